package admin

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"quest-zone/core/logger"
	"quest-zone/feature/content"
)

// Handler handles HTTP requests for the admin panel.
type Handler struct {
	service *Service
	store   *content.Store
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, store *content.Store) *Handler {
	return &Handler{service: service, store: store}
}

// RegisterRoutes registers the admin routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/admin")
	group.Post("/login", h.HandleLogin)
	group.Post("/logout", h.HandleLogout)

	protected := group.Use(h.RequireSession)
	protected.Get("/session", h.HandleGetSession)
	protected.Post("/content", h.HandleSaveContent)
	protected.Post("/gallery/upload", h.HandleUploadGalleryImage)
	protected.Post("/refresh", h.HandleRefresh)
}

// RequireSession rejects requests without a valid bearer token.
func (h *Handler) RequireSession(c *fiber.Ctx) error {
	header := c.Get(fiber.HeaderAuthorization)
	token := strings.TrimPrefix(header, "Bearer ")
	if token == "" || token == header {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "missing session token",
		})
	}

	session, err := h.service.VerifyToken(token)
	if err != nil {
		status := fiber.StatusUnauthorized
		if errors.Is(err, ErrNotConfigured) {
			status = fiber.StatusServiceUnavailable
		}
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	c.Locals("admin_session", session)
	return c.Next()
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// HandleLogin signs an admin in and returns a session token.
// @Summary Admin Login
// @Description Exchange admin credentials for a session token.
// @Tags admin
// @Accept json
// @Produce json
// @Param credentials body loginRequest true "Admin credentials"
// @Success 200 {object} map[string]string "Session Token"
// @Failure 401 {object} map[string]string "Invalid Credentials"
// @Failure 503 {object} map[string]string "Admin Not Configured"
// @Router /admin/login [post]
func (h *Handler) HandleLogin(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	token, err := h.service.Login(c.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidCredentials):
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, ErrNotConfigured):
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
		default:
			l.Error("Admin login failed", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
	}

	return c.JSON(fiber.Map{"token": token})
}

// HandleLogout ends the session. Tokens are stateless so this only tells
// the client to drop its copy.
// @Summary Admin Logout
// @Description End the admin session.
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]bool "Logged Out"
// @Router /admin/logout [post]
func (h *Handler) HandleLogout(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"ok": true})
}

// HandleGetSession returns the session behind the presented token.
// @Summary Get Admin Session
// @Description Get the admin session carried by the bearer token.
// @Tags admin
// @Produce json
// @Success 200 {object} Session "Session"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /admin/session [get]
func (h *Handler) HandleGetSession(c *fiber.Ctx) error {
	return c.JSON(c.Locals("admin_session"))
}

// HandleSaveContent publishes an edit payload to the remote tables.
// @Summary Save Content
// @Description Publish edited content sections to the remote tables and refresh.
// @Tags admin
// @Accept json
// @Produce json
// @Param payload body SavePayload true "Edited content sections"
// @Success 200 {object} map[string]string "Saved"
// @Failure 400 {object} map[string]string "Invalid Payload"
// @Failure 503 {object} map[string]string "Remote Store Not Configured"
// @Router /admin/content [post]
func (h *Handler) HandleSaveContent(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var payload SavePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	if err := h.service.SaveAll(c.Context(), payload); err != nil {
		if errors.Is(err, content.ErrNotConfigured) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
		}
		l.Error("Content save failed", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"status": "saved",
		"source": string(h.store.Source()),
	})
}

// HandleUploadGalleryImage stores an uploaded image and returns its public URL.
// @Summary Upload Gallery Image
// @Description Upload a gallery image and get back its public URL.
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Image file"
// @Success 200 {object} map[string]string "Public URL"
// @Failure 400 {object} map[string]string "Missing File"
// @Failure 503 {object} map[string]string "Storage Not Configured"
// @Router /admin/gallery/upload [post]
func (h *Handler) HandleUploadGalleryImage(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	file, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing image file"})
	}

	src, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unreadable image file"})
	}
	defer src.Close()

	url, err := h.store.UploadGalleryImage(c.Context(), file.Filename, file.Size, file.Header.Get(fiber.HeaderContentType), src)
	if err != nil {
		if errors.Is(err, content.ErrStorageNotConfigured) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
		}
		l.Error("Gallery upload failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"url": url})
}

// HandleRefresh forces a reconcile pass against the remote tables.
// @Summary Refresh Content
// @Description Re-read the remote tables and install a fresh snapshot.
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]string "Refresh Result"
// @Router /admin/refresh [post]
func (h *Handler) HandleRefresh(c *fiber.Ctx) error {
	snap := h.store.Refresh(c.Context())
	return c.JSON(fiber.Map{
		"source": string(snap.Source),
		"error":  snap.Err,
	})
}
