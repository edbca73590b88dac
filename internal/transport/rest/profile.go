package rest

import (
	"context"
	"io"
	"log/slog"
	"mime"
	"net/http"

	"github.com/google/uuid"

	"github.com/textcomm/textcomm-server/internal/domain"
	"github.com/textcomm/textcomm-server/internal/service/account"
)

// profileService defines the profile operations needed by ProfileHandler.
type profileService interface {
	GetProfile(ctx context.Context) (*domain.User, error)
	GetUser(ctx context.Context, targetID uuid.UUID) (*domain.User, error)
	UpdateProfile(ctx context.Context, input account.UpdateProfileInput) (*domain.User, error)
}

// ProfileHandler serves the profile REST endpoints.
type ProfileHandler struct {
	svc profileService
	log *slog.Logger
}

// NewProfileHandler creates a ProfileHandler.
func NewProfileHandler(svc profileService, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{svc: svc, log: logger.With("handler", "profile")}
}

type updateProfileRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Phone     *string `json:"phone"`
}

// Me handles GET /api/me.
func (h *ProfileHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.svc.GetProfile(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(user))
}

// GetUser handles GET /api/users/{userID}.
func (h *ProfileHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "userID")
	if !ok {
		return
	}

	user, err := h.svc.GetUser(r.Context(), userID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(user))
}

// UpdateUser handles PATCH /api/users/{userID}. A JSON body updates the
// text fields; a multipart body may additionally carry an avatar file.
func (h *ProfileHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "userID")
	if !ok {
		return
	}

	input := account.UpdateProfileInput{TargetID: userID}

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		if !h.parseMultipart(w, r, &input) {
			return
		}
	} else {
		var req updateProfileRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		input.FirstName = req.FirstName
		input.LastName = req.LastName
		input.Phone = req.Phone
	}

	user, err := h.svc.UpdateProfile(r.Context(), input)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(user))
}

// maxMultipartMemory bounds in-memory parsing of profile uploads; larger
// parts spill to temp files.
const maxMultipartMemory = 4 << 20

func (h *ProfileHandler) parseMultipart(w http.ResponseWriter, r *http.Request, input *account.UpdateProfileInput) bool {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart body")
		return false
	}

	// Absent form fields stay nil so the service leaves them unchanged.
	for field, dst := range map[string]**string{
		"firstName": &input.FirstName,
		"lastName":  &input.LastName,
		"phone":     &input.Phone,
	} {
		if values, ok := r.MultipartForm.Value[field]; ok && len(values) > 0 {
			v := values[0]
			*dst = &v
		}
	}

	file, header, err := r.FormFile("avatar")
	if err == http.ErrMissingFile {
		return true
	}
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid avatar upload")
		return false
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid avatar upload")
		return false
	}
	input.Avatar = &account.AvatarUpload{Filename: header.Filename, Data: data}
	return true
}
