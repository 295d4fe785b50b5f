package handlers_fiber

import (
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/ukaji3/rota-go/pkg/rota"
)

// extractPayload returns the uploaded workbook bytes. Multipart requests
// read the configured form field, falling back to the first uploaded file;
// anything else is taken as the raw request body. Only an absent or empty
// upload is ErrMissingPayload; a body that fails to parse is a processing
// error.
func (h *Handler) extractPayload(c *fiber.Ctx) ([]byte, error) {
	body := c.Body()
	if len(body) == 0 {
		return nil, rota.ErrMissingPayload
	}

	if strings.HasPrefix(strings.ToLower(c.Get(fiber.HeaderContentType)), fiber.MIMEMultipartForm) {
		form, err := c.MultipartForm()
		if err != nil {
			return nil, fmt.Errorf("parse multipart upload: %w", err)
		}
		fh := firstFile(form, h.formField)
		if fh == nil {
			return nil, rota.ErrMissingPayload
		}
		return readFormFile(fh)
	}

	return append([]byte(nil), body...), nil
}

func firstFile(form *multipart.Form, field string) *multipart.FileHeader {
	if files := form.File[field]; len(files) > 0 {
		return files[0]
	}
	for _, files := range form.File {
		if len(files) > 0 {
			return files[0]
		}
	}
	return nil
}

func readFormFile(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload %s: %w", fh.Filename, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read upload %s: %w", fh.Filename, err)
	}
	if len(data) == 0 {
		return nil, rota.ErrMissingPayload
	}
	return data, nil
}
