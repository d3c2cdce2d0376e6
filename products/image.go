package products

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

const productUploadPath = "static/productpic"

// saveProductImage stores the optional "image" form file as a normalized jpg
// plus a 300px-wide thumbnail under static/productpic. Returns the stored
// filename, or "" when no file was uploaded.
func saveProductImage(r *http.Request, productID string) (string, error) {
	file, header, err := r.FormFile("image")
	if err == http.ErrMissingFile {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("error retrieving image file")
	}
	defer file.Close()

	switch header.Header.Get("Content-Type") {
	case "image/jpeg", "image/png", "image/webp":
	default:
		return "", fmt.Errorf("unsupported image type. Only JPG, PNG and WEBP are allowed")
	}

	img, err := imaging.Decode(file)
	if err != nil {
		return "", fmt.Errorf("failed to decode image")
	}

	fileName := productID + ".jpg"
	thumbDir := filepath.Join(productUploadPath, "thumb")
	if err := os.MkdirAll(thumbDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create upload directory")
	}

	if err := imaging.Save(img, filepath.Join(productUploadPath, fileName)); err != nil {
		return "", fmt.Errorf("failed to save image")
	}

	thumb := imaging.Resize(img, 300, 0, imaging.Lanczos)
	if err := imaging.Save(thumb, filepath.Join(thumbDir, fileName)); err != nil {
		return "", fmt.Errorf("failed to save thumbnail")
	}

	return fileName, nil
}
