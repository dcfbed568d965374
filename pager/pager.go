// Package pager owns the backing file and maps page numbers to
// in-memory page buffers: demand load, lazy allocate, bounds checks,
// and flush-on-close.
package pager

import (
	"fmt"
	"io"
	"os"

	"tdb/dberr"
)

const (
	// PageSize is the fixed size of every page, in bytes.
	PageSize = 4096
	// TableMaxPages bounds the fixed-slot page cache.
	TableMaxPages = 100
)

// Pager owns the database file descriptor and a fixed-slot cache of
// resident page buffers. Slot i is nil until first materialized by
// GetPage; it is never reloaded once resident.
type Pager struct {
	file       *os.File
	fileLength int64
	numPages   uint32
	// pages is sized one past TableMaxPages: get_page's bounds check
	// (n > TableMaxPages) allows n == TableMaxPages through, matching
	// the original tutorial's off-by-one; the extra slot keeps that
	// access memory-safe instead of panicking.
	pages [TableMaxPages + 1]*[PageSize]byte
}

// Open opens path for read/write, creating it with user-only
// permissions if absent. It fails fatally if the file length is not a
// whole number of pages, since such a file cannot have been produced
// by a clean close of this engine.
func Open(path string) (*Pager, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0600)
	if err != nil {
		return nil, dberr.WrapFatal("unable to open database file", err)
	}

	length, err := f.Seek(0, io.SeekEnd)
	if err != nil {
		f.Close()
		return nil, dberr.WrapFatal("unable to seek database file", err)
	}

	if length%PageSize != 0 {
		f.Close()
		return nil, dberr.NewFatal("Db file is not a whole number of pages. Corrupt file.")
	}

	return &Pager{
		file:       f,
		fileLength: length,
		numPages:   uint32(length / PageSize),
	}, nil
}

// NumPages reports the highest page number ever materialized, plus one.
func (p *Pager) NumPages() uint32 { return p.numPages }

// GetPage returns the resident buffer for page n, loading it from disk
// on first access if the file is long enough to contain it. Repeated
// calls with the same n return the same buffer.
func (p *Pager) GetPage(n uint32) (*[PageSize]byte, error) {
	if n > TableMaxPages {
		return nil, dberr.NewFatal(fmt.Sprintf("Attempted to fetch page number out of bounds: %d > %d", n, TableMaxPages))
	}

	if p.pages[n] == nil {
		buf := new([PageSize]byte)

		pagesOnDisk := uint32(p.fileLength / PageSize)
		if p.fileLength%PageSize != 0 {
			pagesOnDisk++
		}
		if n < pagesOnDisk {
			if _, err := p.file.Seek(int64(n)*PageSize, io.SeekStart); err != nil {
				return nil, dberr.WrapFatal("error seeking database file", err)
			}
			if _, err := io.ReadFull(p.file, buf[:]); err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
				return nil, dberr.WrapFatal("error reading database file", err)
			}
		}

		p.pages[n] = buf
	}

	if n >= p.numPages {
		p.numPages = n + 1
	}

	return p.pages[n], nil
}

// Flush writes the resident page n back to its position in the file in
// full. It fails fatally if page n was never materialized.
func (p *Pager) Flush(n uint32) error {
	if p.pages[n] == nil {
		return dberr.NewFatal(fmt.Sprintf("Tried to flush null page %d", n))
	}
	if _, err := p.file.Seek(int64(n)*PageSize, io.SeekStart); err != nil {
		return dberr.WrapFatal("error seeking database file", err)
	}
	if _, err := p.file.Write(p.pages[n][:]); err != nil {
		return dberr.WrapFatal("error writing database file", err)
	}
	return nil
}

// Resident reports whether page n has been materialized this session.
func (p *Pager) Resident(n uint32) bool { return p.pages[n] != nil }

// Release drops page n from the cache without flushing it.
func (p *Pager) Release(n uint32) { p.pages[n] = nil }

// CloseFile closes the underlying file descriptor. Callers must flush
// every resident page first; Pager itself does not decide which pages
// to flush, since that is a Table-level policy (see table.Close).
func (p *Pager) CloseFile() error {
	return p.file.Close()
}
