package handler

import (
	"github.com/gofiber/fiber/v2"

	"ubuntuhub/internal/service"
)

// ListDocuments lists documents with limit & offset, optionally for one organization_id.
func ListDocuments(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, offset, err := pageParams(c)
		if err != nil {
			return respondError(c, err)
		}
		orgID := c.Query("organization_id")
		if orgID != "" {
			if orgID, err = parseUUID(orgID); err != nil {
				return respondError(c, err)
			}
		}

		res, err := svc.List(c.UserContext(), orgID, limit, offset)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(res)
	}
}

// UploadDocument takes multipart/form-data with fields file and organization_id.
func UploadDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return respondError(c, errFileRequired)
		}
		orgID, err := parseUUID(c.FormValue("organization_id"))
		if err != nil {
			return respondError(c, err)
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		ct := fh.Header.Get("Content-Type")
		if ct == "" {
			ct = "application/octet-stream"
		}

		doc, err := svc.Upload(c.UserContext(), orgID, f, fh.Filename, ct, fh.Size)
		if err != nil {
			return respondError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(doc)
	}
}

func GetDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuidParam(c, "id")
		if err != nil {
			return respondError(c, err)
		}
		doc, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(doc)
	}
}

func DeleteDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuidParam(c, "id")
		if err != nil {
			return respondError(c, err)
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			return respondError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// DownloadDocument returns a short-lived presigned URL for the content. With
// redirect=true it answers 307 to that URL; with stream=true it proxies the bytes.
func DownloadDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuidParam(c, "id")
		if err != nil {
			return respondError(c, err)
		}
		if c.Query("stream") == "true" {
			return streamDocument(c, svc, id)
		}
		u, err := svc.DownloadURL(c.UserContext(), id)
		if err != nil {
			return respondError(c, err)
		}
		if c.Query("redirect") == "true" {
			return c.Redirect(u, fiber.StatusTemporaryRedirect)
		}
		return c.JSON(fiber.Map{"url": u})
	}
}

func streamDocument(c *fiber.Ctx, svc service.DocumentService, id string) error {
	doc, rc, err := svc.Open(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	name := doc.OriginalName
	if name == "" {
		name = doc.Filename
	}
	c.Attachment(name)
	if doc.ContentType != "" {
		c.Set(fiber.HeaderContentType, doc.ContentType)
	}
	size := int(doc.Size)
	if size <= 0 {
		size = -1
	}
	// fasthttp closes rc once the body is written
	return c.SendStream(rc, size)
}
