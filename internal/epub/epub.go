package epub

import (
	"archive/zip"
	"bytes"
	"compress/flate"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"io"
	"path"
	"strings"
	"time"

	"speedread/internal/domain"
)

const (
	// extraZip64 is regenerated by archive/zip when an entry needs it.
	extraZip64 = 0x0001
	// flagDataDescriptor marks sizes and CRC as trailing the entry data.
	flagDataDescriptor = 0x8
)

// Converter rewrites whole EPUB containers.
type Converter struct {
	proc *Processor
}

// NewConverter returns a Converter that rewrites documents with proc.
func NewConverter(proc *Processor) *Converter {
	return &Converter{proc: proc}
}

var _ domain.Converter = (*Converter)(nil)

// ConvertEPUB reads the zip in r and writes the converted container to w.
func (c *Converter) ConvertEPUB(r io.ReaderAt, size int64, w io.Writer, mode domain.Mode) error {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrBadZip, err)
	}

	zw := zip.NewWriter(w)
	for _, f := range zr.File {
		if IsHTMLName(f.Name) {
			err = c.rewriteEntry(zw, f, mode)
		} else {
			err = copyEntry(zw, f)
		}
		if err != nil {
			return err
		}
	}
	if err := zw.SetComment(zr.Comment); err != nil {
		return err
	}
	return zw.Close()
}

// ConvertBytes is ConvertEPUB over in-memory buffers.
func (c *Converter) ConvertBytes(epub []byte, mode domain.Mode) ([]byte, error) {
	var out bytes.Buffer
	if err := c.ConvertEPUB(bytes.NewReader(epub), int64(len(epub)), &out, mode); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// IsHTMLName reports whether an entry name looks like an (X)HTML document.
func IsHTMLName(name string) bool {
	switch strings.ToLower(path.Ext(name)) {
	case ".xhtml", ".html", ".htm":
		return true
	}
	return false
}

// OutputName derives the download name for a converted book:
// "book.epub" becomes "book-speedread.epub".
func OutputName(name string) string {
	base := name
	if strings.EqualFold(path.Ext(name), ".epub") {
		base = name[:len(name)-len(".epub")]
	}
	return base + "-speedread.epub"
}

// copyEntry copies f's compressed bytes and header unchanged.
func copyEntry(zw *zip.Writer, f *zip.File) error {
	raw, err := f.OpenRaw()
	if err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrBadZip, f.Name, err)
	}
	fw, err := zw.CreateRaw(copyHeader(f))
	if err != nil {
		return err
	}
	_, err = io.Copy(fw, raw)
	return err
}

// rewriteEntry converts one document and stores it under f's header. Stored
// entries stay stored; anything else is deflated.
func (c *Converter) rewriteEntry(zw *zip.Writer, f *zip.File, mode domain.Mode) error {
	data, err := readEntry(f)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrBadZip, f.Name, err)
	}
	if data, err = c.proc.ProcessHTML(data, mode); err != nil {
		return fmt.Errorf("process %s: %w", f.Name, err)
	}

	fh := copyHeader(f)
	body := data
	if fh.Method != zip.Store {
		fh.Method = zip.Deflate
		if body, err = deflate(data); err != nil {
			return err
		}
	}
	fh.CRC32 = crc32.ChecksumIEEE(data)
	fh.UncompressedSize64 = uint64(len(data))
	fh.CompressedSize64 = uint64(len(body))

	fw, err := zw.CreateRaw(fh)
	if err != nil {
		return err
	}
	_, err = fw.Write(body)
	return err
}

func readEntry(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

func deflate(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	fw, err := flate.NewWriter(&buf, flate.DefaultCompression)
	if err != nil {
		return nil, err
	}
	if _, err := fw.Write(data); err != nil {
		return nil, err
	}
	if err := fw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// copyHeader clones f's header for CreateRaw. Modified is cleared so the
// MS-DOS date, time and extra fields are written exactly as read, and sizes
// go in the local header instead of a trailing data descriptor.
func copyHeader(f *zip.File) *zip.FileHeader {
	fh := f.FileHeader
	fh.Modified = time.Time{}
	fh.Flags &^= flagDataDescriptor
	fh.Extra = filterExtra(f.Extra)
	return &fh
}

// filterExtra drops the zip64 field, which the zip writer adds itself when
// sizes require it.
func filterExtra(extra []byte) []byte {
	var out []byte
	for len(extra) >= 4 {
		id := binary.LittleEndian.Uint16(extra[0:2])
		n := int(binary.LittleEndian.Uint16(extra[2:4]))
		if 4+n > len(extra) {
			break
		}
		if id != extraZip64 {
			out = append(out, extra[:4+n]...)
		}
		extra = extra[4+n:]
	}
	return out
}
