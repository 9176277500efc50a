package handler

import (
	"mime/multipart"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/efinder/venue-booking/internal/api/metrics"
	"github.com/efinder/venue-booking/internal/core/ports"
)

// PhotoStorage persists uploaded venue photos and hands back public URLs.
type PhotoStorage interface {
	Save(fh *multipart.FileHeader) (string, error)
	Remove(url string) bool
}

// VenueHandler handles HTTP requests for the venue directory. Create and
// update accept multipart form data so a photo can be uploaded alongside the
// fields; the photo write is not transactional with the record write, so the
// failure path removes the file best-effort.
type VenueHandler struct {
	service ports.VenueService
	photos  PhotoStorage
}

func NewVenueHandler(service ports.VenueService, photos PhotoStorage) *VenueHandler {
	return &VenueHandler{service: service, photos: photos}
}

// savePhoto stores the optional `photo` form file and returns its URL, or ""
// when no file was sent.
func (h *VenueHandler) savePhoto(c echo.Context) (string, error) {
	fh, err := c.FormFile("photo")
	if err != nil {
		// No file in the request. Multipart parse failures surface later
		// through Bind.
		return "", nil
	}
	url, err := h.photos.Save(fh)
	if err != nil {
		return "", err
	}
	metrics.VenuePhotosStoredTotal.Inc()
	return url, nil
}

// Create registers a venue for an owner-role user.
//
// @Summary      Create a venue
// @Tags         venues
// @Accept       multipart/form-data
// @Produce      json
// @Param        name           formData  string   true   "Venue name"
// @Param        description    formData  string   true   "Description"
// @Param        location       formData  string   true   "Location"
// @Param        capacity       formData  integer  true   "Capacity"
// @Param        price          formData  number   true   "Price per day"
// @Param        contact_email  formData  string   true   "Contact email"
// @Param        contact_phone  formData  string   true   "Contact phone"
// @Param        owner_id       formData  string   true   "Owner user ID"
// @Param        photo          formData  file     false  "Venue photo (max 5MB, image only)"
// @Success      201  {object}  venueResponse
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/venues [post]
func (h *VenueHandler) Create(c echo.Context) error {
	var req createVenueRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	photoURL, err := h.savePhoto(c)
	if err != nil {
		return err
	}

	venue, err := h.service.Create(c.Request().Context(), ports.CreateVenueInput{
		Name:         req.Name,
		Description:  req.Description,
		Location:     req.Location,
		Capacity:     req.Capacity,
		Price:        req.Price,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		PhotoURL:     photoURL,
		OwnerID:      req.OwnerID,
	})
	if err != nil {
		h.photos.Remove(photoURL)
		return err
	}

	return c.JSON(http.StatusCreated, venueResponse{Message: "Venue created successfully", Venue: venue})
}

// List returns active venues matching the query filters.
//
// @Summary      List venues
// @Tags         venues
// @Produce      json
// @Param        location      query     string   false  "Location substring"
// @Param        min_capacity  query     integer  false  "Minimum capacity"
// @Param        max_capacity  query     integer  false  "Maximum capacity"
// @Param        min_price     query     number   false  "Minimum price"
// @Param        max_price     query     number   false  "Maximum price"
// @Param        owner_id      query     string   false  "Owner user ID"
// @Param        limit         query     integer  false  "Page size (default 20)"
// @Param        offset        query     integer  false  "Page offset"
// @Success      200  {object}  venueListResponse
// @Router       /api/venues [get]
func (h *VenueHandler) List(c echo.Context) error {
	var q listVenuesQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}

	venues, err := h.service.List(c.Request().Context(), ports.ListVenuesFilter{
		Location:    q.Location,
		MinCapacity: q.MinCapacity,
		MaxCapacity: q.MaxCapacity,
		MinPrice:    q.MinPrice,
		MaxPrice:    q.MaxPrice,
		OwnerID:     q.OwnerID,
		Limit:       q.Limit,
		Offset:      q.Offset,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, venueListResponse{Count: len(venues), Venues: venues})
}

// Search returns active venues whose name, description or location contains
// the search term.
//
// @Summary      Search venues
// @Tags         venues
// @Produce      json
// @Param        search        query     string   true   "Search term"
// @Param        min_capacity  query     integer  false  "Minimum capacity"
// @Param        max_price     query     number   false  "Maximum price"
// @Param        limit         query     integer  false  "Page size (default 20)"
// @Success      200  {object}  venueListResponse
// @Failure      400  {object}  map[string]string
// @Router       /api/venues/search [get]
func (h *VenueHandler) Search(c echo.Context) error {
	var q searchVenuesQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}
	if q.Search == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Search term is required")
	}

	venues, err := h.service.Search(c.Request().Context(), ports.SearchVenuesFilter{
		Term:        q.Search,
		MinCapacity: q.MinCapacity,
		MaxPrice:    q.MaxPrice,
		Limit:       q.Limit,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, venueListResponse{Count: len(venues), Venues: venues})
}

// Get returns one venue by id.
//
// @Summary      Get a venue
// @Tags         venues
// @Produce      json
// @Param        id   path      string  true  "Venue ID"
// @Success      200  {object}  venueResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/venues/{id} [get]
func (h *VenueHandler) Get(c echo.Context) error {
	venue, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, venueResponse{Venue: venue})
}

// Update applies partial changes to a venue, optionally replacing its photo.
//
// @Summary      Update a venue
// @Tags         venues
// @Accept       multipart/form-data
// @Produce      json
// @Param        id     path      string  true   "Venue ID"
// @Param        photo  formData  file    false  "Replacement photo"
// @Success      200    {object}  venueResponse
// @Failure      400    {object}  map[string]string
// @Failure      404    {object}  map[string]string
// @Router       /api/venues/{id} [put]
func (h *VenueHandler) Update(c echo.Context) error {
	var req updateVenueRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	fields := ports.UpdateVenueFields{
		Name:         req.Name,
		Description:  req.Description,
		Location:     req.Location,
		Capacity:     req.Capacity,
		Price:        req.Price,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
	}

	photoURL, err := h.savePhoto(c)
	if err != nil {
		return err
	}
	if photoURL != "" {
		fields.PhotoURL = &photoURL
	}

	result, err := h.service.Update(c.Request().Context(), c.Param("id"), fields)
	if err != nil {
		h.photos.Remove(photoURL)
		return err
	}
	if result.ReplacedPhotoURL != "" {
		h.photos.Remove(result.ReplacedPhotoURL)
	}

	return c.JSON(http.StatusOK, venueResponse{Message: "Venue updated successfully", Venue: result.Venue})
}

// Delete retires a venue. The record stays behind with is_active false.
//
// @Summary      Delete a venue
// @Tags         venues
// @Produce      json
// @Param        id   path      string  true  "Venue ID"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/venues/{id} [delete]
func (h *VenueHandler) Delete(c echo.Context) error {
	if err := h.service.SoftDelete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Venue deleted successfully"})
}

// ByOwner returns an owner's active venues.
//
// @Summary      List venues by owner
// @Tags         venues
// @Produce      json
// @Param        ownerId  path      string  true  "Owner user ID"
// @Success      200      {object}  ownerVenuesResponse
// @Failure      404      {object}  map[string]string
// @Router       /api/venues/owner/{ownerId} [get]
func (h *VenueHandler) ByOwner(c echo.Context) error {
	owner, venues, err := h.service.ListByOwner(c.Request().Context(), c.Param("ownerId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ownerVenuesResponse{Owner: owner, Count: len(venues), Venues: venues})
}

// Stats returns the booking aggregates of one venue.
//
// @Summary      Venue booking statistics
// @Tags         venues
// @Produce      json
// @Param        id   path      string  true  "Venue ID"
// @Success      200  {object}  venueStatsResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/venues/{id}/stats [get]
func (h *VenueHandler) Stats(c echo.Context) error {
	venue, stats, err := h.service.Stats(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, venueStatsResponse{Venue: venue, Stats: stats})
}
