package web

import (
	"bytes"
	"errors"
	"io"
	"mime"
	"net/http"
	"path"
	"strconv"
	"strings"

	"speedread/internal/domain"
	"speedread/internal/epub"
)

// User-facing flash messages.
const (
	msgNoFile    = "Файл не найден в запросе"
	msgEmptyName = "Выберите EPUB-файл"
	msgNotEPUB   = "Нужен файл с расширением .epub"
	msgBadZip    = "Файл не похож на EPUB (поврежденный ZIP)"
)

type indexData struct {
	Flashes     []string
	MaxUploadMB int64
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	msgs, err := s.flash.Pop(w, r)
	if err != nil {
		s.log.Debug().Err(err).Msg("dropping flash cookie")
	}

	var buf bytes.Buffer
	if err := s.index.Execute(&buf, indexData{Flashes: msgs, MaxUploadMB: s.maxMB}); err != nil {
		s.log.Error().Err(err).Msg("render index")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxBytes)

	file, header, err := r.FormFile("epub")
	var tooBig *http.MaxBytesError
	switch {
	case errors.As(err, &tooBig):
		http.Error(w, "upload too large", http.StatusRequestEntityTooLarge)
		return
	case errors.Is(err, http.ErrMissingFile) && fieldSent(r, "epub"):
		// A form submitted with no file chosen sends the part with filename="",
		// which the multipart reader files under Value rather than File.
		s.reject(w, r, domain.ErrEmptyFilename, msgEmptyName)
		return
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
		s.reject(w, r, domain.ErrNoFile, msgNoFile)
		return
	case err != nil:
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	name := uploadBase(header.Filename)
	if strings.TrimSpace(header.Filename) == "" || name == "." || name == "/" {
		s.reject(w, r, domain.ErrEmptyFilename, msgEmptyName)
		return
	}
	if !strings.EqualFold(path.Ext(name), ".epub") {
		s.reject(w, r, domain.ErrNotEPUB, msgNotEPUB)
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	mode := domain.ParseMode(r.FormValue("mode"))
	var out bytes.Buffer
	if err := s.conv.ConvertEPUB(bytes.NewReader(data), int64(len(data)), &out, mode); err != nil {
		if errors.Is(err, domain.ErrBadZip) {
			s.reject(w, r, err, msgBadZip)
			return
		}
		s.log.Error().Err(err).Str("file", name).Msg("convert failed")
		http.Error(w, "conversion failed", http.StatusInternalServerError)
		return
	}

	download := epub.OutputName(downloadStem(name) + ".epub")
	s.log.Info().Str("file", name).Str("mode", mode.String()).Int("in_bytes", len(data)).Int("out_bytes", out.Len()).Msg("converted")

	w.Header().Set("Content-Type", "application/epub+zip")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": download}))
	w.Header().Set("Content-Length", strconv.Itoa(out.Len()))
	_, _ = out.WriteTo(w)
}

// reject flashes msg and sends the browser back to the form.
func (s *Server) reject(w http.ResponseWriter, r *http.Request, reason error, msg string) {
	s.log.Info().Err(reason).Msg("upload rejected")
	if err := s.flash.Add(w, r, msg); err != nil {
		s.log.Error().Err(err).Msg("set flash")
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func fieldSent(r *http.Request, name string) bool {
	if r.MultipartForm == nil {
		return false
	}
	_, ok := r.MultipartForm.Value[name]
	return ok
}

// downloadStem is the sanitised name without its extension, or "book" when
// nothing printable survives sanitising.
func downloadStem(name string) string {
	stem := SecureFilename(strings.TrimSuffix(name, path.Ext(name)))
	if stem == "" {
		return "book"
	}
	return stem
}
