// Package extract turns uploaded document bytes into plain text and reading-order lines.
package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

const (
	MimePDF  = "application/pdf"
	MimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MimeText = "text/plain"
)

// ErrUnsupportedType is returned for payloads that are not PDF, DOCX or plain text.
var ErrUnsupportedType = errors.New("unsupported document type")

// Document is the decoded text of an upload. Lines follow reading order when the
// format carries layout (PDF rows) and natural line breaks otherwise.
type Document struct {
	Text      string
	Lines     []string
	PageCount int
}

// FromBytes decodes data according to its MIME type, sniffing zip payloads and
// falling back to the file extension when the type is missing or generic.
func FromBytes(ctx context.Context, data []byte, mimeType string, fileName string) (Document, error) {
	if err := ctx.Err(); err != nil {
		return Document{}, err
	}
	normalized := NormalizeMimeType(mimeType, fileName, data)
	switch normalized {
	case MimePDF:
		return extractPDF(ctx, data)
	case MimeDOCX:
		return extractDOCX(data)
	case MimeText:
		return extractPlain(data)
	default:
		return Document{}, fmt.Errorf("%w: %s", ErrUnsupportedType, normalized)
	}
}

// extractPDF reads rows page by page. The pdf package panics on some malformed
// streams, so panics are turned into errors.
func extractPDF(ctx context.Context, data []byte) (doc Document, err error) {
	defer func() {
		if r := recover(); r != nil {
			doc, err = Document{}, fmt.Errorf("read pdf: %v", r)
		}
	}()
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return Document{}, fmt.Errorf("read pdf: %w", err)
	}
	doc = Document{PageCount: reader.NumPage()}
	var text strings.Builder
	for i := 1; i <= doc.PageCount; i++ {
		if err := ctx.Err(); err != nil {
			return Document{}, err
		}
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			plain, plainErr := page.GetPlainText(nil)
			if plainErr != nil {
				return Document{}, fmt.Errorf("pdf page %d: %w", i, err)
			}
			doc.Lines = append(doc.Lines, splitLines(plain)...)
			text.WriteString(plain)
			text.WriteString("\n")
			continue
		}
		for _, row := range rows {
			var line strings.Builder
			for _, word := range row.Content {
				line.WriteString(word.S)
			}
			trimmed := strings.TrimSpace(line.String())
			if trimmed == "" {
				continue
			}
			doc.Lines = append(doc.Lines, trimmed)
			text.WriteString(trimmed)
			text.WriteString("\n")
		}
	}
	doc.Text = text.String()
	return doc, nil
}

func extractDOCX(data []byte) (Document, error) {
	if len(data) == 0 {
		return Document{}, errors.New("empty docx data")
	}
	r, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return Document{}, fmt.Errorf("read docx: %w", err)
	}
	defer r.Close()

	text := stripDocxXML(r.Editable().GetContent())
	return Document{Text: text, Lines: splitLines(text), PageCount: 1}, nil
}

func extractPlain(data []byte) (Document, error) {
	if !utf8.Valid(data) {
		data = bytes.ToValidUTF8(data, []byte("�"))
	}
	text := string(data)
	return Document{Text: text, Lines: splitLines(text), PageCount: 1}, nil
}

// stripDocxXML keeps character data and turns paragraph and break ends into newlines.
func stripDocxXML(raw string) string {
	decoder := xml.NewDecoder(strings.NewReader(raw))
	var buf strings.Builder
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return raw
		}
		switch t := tok.(type) {
		case xml.CharData:
			buf.WriteString(string(t))
		case xml.EndElement:
			if t.Name.Local == "p" || t.Name.Local == "br" {
				if buf.Len() > 0 {
					buf.WriteString("\n")
				}
			}
		}
	}
	return strings.TrimSpace(buf.String())
}

func splitLines(text string) []string {
	raw := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	out := make([]string, 0, len(raw))
	for _, line := range raw {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// NormalizeMimeType strips parameters, resolves zip payloads to the OOXML type they
// contain, and uses the file extension when the declared type says nothing useful.
func NormalizeMimeType(mimeType string, fileName string, data []byte) string {
	clean := strings.ToLower(strings.TrimSpace(strings.Split(mimeType, ";")[0]))
	switch clean {
	case "application/zip":
		if mapped := mapOOXMLFromZip(data); mapped != "" {
			return mapped
		}
		if ext := strings.ToLower(filepath.Ext(fileName)); ext == ".docx" {
			return MimeDOCX
		}
		return clean
	case "", "application/octet-stream":
		if ext := fromExtension(fileName); ext != "" {
			return ext
		}
		if bytes.HasPrefix(data, []byte("%PDF-")) {
			return MimePDF
		}
		if mapped := mapOOXMLFromZip(data); mapped != "" {
			return mapped
		}
		return clean
	default:
		return clean
	}
}

func fromExtension(fileName string) string {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".pdf":
		return MimePDF
	case ".docx":
		return MimeDOCX
	case ".txt", ".text", ".md":
		return MimeText
	default:
		return ""
	}
}

func mapOOXMLFromZip(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return ""
	}
	for _, f := range zr.File {
		name := strings.ReplaceAll(f.Name, "\\", "/")
		switch name {
		case "word/document.xml":
			return MimeDOCX
		case "xl/workbook.xml":
			return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
		case "ppt/presentation.xml":
			return "application/vnd.openxmlformats-officedocument.presentationml.presentation"
		}
	}
	return ""
}
