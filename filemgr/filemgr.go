package filemgr

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"ecogrocer/utils"

	"github.com/disintegration/imaging"
)

type EntityType string

const (
	EntityProduct EntityType = "product"
	EntityUser    EntityType = "user"
)

const thumbWidth = 400

var supportedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

func uploadDir(entity EntityType) string {
	return filepath.Join("static", string(entity)+"pic")
}

// SaveFormFile stores the uploaded image from the named form field under
// static/<entity>pic and returns the relative path. With thumb set, a
// <name>_thumb.jpg resized copy is written next to it.
func SaveFormFile(form *multipart.Form, field string, entity EntityType, thumb bool) (string, error) {
	files := form.File[field]
	if len(files) == 0 {
		return "", fmt.Errorf("no file in field %q", field)
	}
	header := files[0]

	ext, ok := supportedImageTypes[header.Header.Get("Content-Type")]
	if !ok {
		return "", fmt.Errorf("unsupported image type %q", header.Header.Get("Content-Type"))
	}

	src, err := header.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dir := uploadDir(entity)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	name := utils.GetUUID() + ext
	path := filepath.Join(dir, name)

	dst, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return "", err
	}
	dst.Close()

	if thumb {
		if err := writeThumbnail(path); err != nil {
			// Thumbnail failure keeps the original upload usable.
			return path, nil
		}
	}
	return path, nil
}

func writeThumbnail(path string) error {
	img, err := imaging.Open(path)
	if err != nil {
		return err
	}
	resized := imaging.Resize(img, thumbWidth, 0, imaging.Lanczos)

	base := strings.TrimSuffix(path, filepath.Ext(path))
	return imaging.Save(resized, base+"_thumb.jpg")
}
