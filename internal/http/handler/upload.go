package handler

import (
	"io"
	"mime/multipart"
	"strings"

	"github.com/gofiber/fiber/v2"

	"gradescan/internal/service"
)

const (
	// AnswerSheetField is the multipart field carrying the scanned answer sheet.
	AnswerSheetField = "answerSheet"

	msgNoFilePart = "No file part in the request"
)

// UploadAndScore godoc
// @Summary Upload an answer sheet and get a simulated score
// @Tags scoring
// @Accept multipart/form-data
// @Produce json
// @Param answerSheet formData file true "Scanned answer sheet (PDF)"
// @Success 200 {object} scoreResponse
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /upload_and_score [post]
func UploadAndScore(svc service.UploadService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		form, err := c.MultipartForm()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, msgNoFilePart)
		}

		files := form.File[AnswerSheetField]
		if len(files) == 0 {
			// A file input submitted with nothing selected arrives as an empty value.
			if _, ok := form.Value[AnswerSheetField]; ok {
				return process(c, svc, nil)
			}
			return writeError(c, fiber.StatusBadRequest, msgNoFilePart)
		}

		return process(c, svc, files[0])
	}
}

func process(c *fiber.Ctx, svc service.UploadService, fh *multipart.FileHeader) error {
	var r io.Reader = strings.NewReader("")
	filename := ""
	if fh != nil {
		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "Cannot open uploaded file")
		}
		defer f.Close()
		r, filename = f, fh.Filename
	}

	rec, err := svc.Process(c.UserContext(), r, filename)
	if err != nil {
		return writeError(c, statusFor(service.KindOf(err)), service.MessageOf(err))
	}
	return writeData(c, "", rec)
}
