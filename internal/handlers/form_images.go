package handlers

import (
	"fmt"
	"io"
	"mime/multipart"

	"jobapply_backend/internal/wizard"
)

// Multipart field names for the image slots.
const (
	fieldProfilePicture = "profile_picture"
)

func fieldProjectTitle(i int) string {
	return fmt.Sprintf("project_%d_title", i)
}

func fieldProjectDescription(i int) string {
	return fmt.Sprintf("project_%d_description", i)
}

func fieldProjectMainImage(i int) string {
	return fmt.Sprintf("project_%d_main_image", i)
}

func fieldProjectAdditionalImage(i, j int) string {
	return fmt.Sprintf("project_%d_additional_image_%d", i, j)
}

// readImageFile pulls one uploaded file into memory. The file stays
// unsaved until the submission orchestrator uploads it.
func readImageFile(fh *multipart.FileHeader) (*wizard.ImageFile, error) {
	file, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file %q: %w", fh.Filename, err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read uploaded file %q: %w", fh.Filename, err)
	}

	return &wizard.ImageFile{
		Name:        fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

// attachFormImages fills the form's image slots from a multipart form.
// Missing fields leave their slots nil; they are never padded.
func attachFormImages(form *multipart.Form, data *wizard.FormData) error {
	pick := func(field string) (*wizard.ImageFile, error) {
		headers := form.File[field]
		if len(headers) == 0 {
			return nil, nil
		}
		return readImageFile(headers[0])
	}

	img, err := pick(fieldProfilePicture)
	if err != nil {
		return err
	}
	data.ProfilePicture = img

	for i := range data.Projects {
		if i >= wizard.MaxProjects {
			break
		}

		img, err := pick(fieldProjectMainImage(i))
		if err != nil {
			return err
		}
		data.Projects[i].MainImage = img

		for j := 0; j < wizard.MaxAdditionalImages; j++ {
			img, err := pick(fieldProjectAdditionalImage(i, j))
			if err != nil {
				return err
			}
			data.Projects[i].AdditionalImages[j] = img
		}
	}

	return nil
}
