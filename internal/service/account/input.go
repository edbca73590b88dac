package account

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/textcomm/textcomm-server/internal/domain"
)

// allowedAvatarExts are the accepted avatar file extensions, lowercased.
var allowedAvatarExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// AvatarUpload carries the raw bytes of an uploaded avatar image.
type AvatarUpload struct {
	Filename string
	Data     []byte
}

// UpdateProfileInput holds parameters for the profile update operation.
// Nil pointer fields are left unchanged.
type UpdateProfileInput struct {
	TargetID  uuid.UUID // whose profile; admins may edit anyone's
	FirstName *string
	LastName  *string
	Phone     *string
	Avatar    *AvatarUpload
}

// Validate validates the update input against the upload limits.
func (i UpdateProfileInput) Validate(maxAvatarBytes int64) error {
	var errs []domain.FieldError

	if i.TargetID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "target_id", Message: "required"})
	}
	if i.FirstName != nil && len(*i.FirstName) > 255 {
		errs = append(errs, domain.FieldError{Field: "first_name", Message: "too long"})
	}
	if i.LastName != nil && len(*i.LastName) > 255 {
		errs = append(errs, domain.FieldError{Field: "last_name", Message: "too long"})
	}
	if i.Phone != nil && len(*i.Phone) > 32 {
		errs = append(errs, domain.FieldError{Field: "phone", Message: "too long"})
	}

	if i.Avatar != nil {
		ext := strings.ToLower(filepath.Ext(i.Avatar.Filename))
		if !allowedAvatarExts[ext] {
			errs = append(errs, domain.FieldError{Field: "avatar", Message: "unsupported file type"})
		}
		if len(i.Avatar.Data) == 0 {
			errs = append(errs, domain.FieldError{Field: "avatar", Message: "empty file"})
		} else if int64(len(i.Avatar.Data)) > maxAvatarBytes {
			errs = append(errs, domain.FieldError{Field: "avatar", Message: "file too large"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
