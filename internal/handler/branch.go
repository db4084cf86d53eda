package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/banjos/restaurant-api/internal/model"
	"github.com/banjos/restaurant-api/internal/repository"
	"github.com/banjos/restaurant-api/internal/storage"
)

// BranchHandler serves the /branches family.  Create and update accept
// multipart forms with an optional image upload.
type BranchHandler struct {
	Branches *repository.BranchRepo
}

func NewBranchHandler(r *repository.BranchRepo) *BranchHandler {
	return &BranchHandler{Branches: r}
}

func (h *BranchHandler) Create(c echo.Context) error {
	b := model.Branch{
		Name:                c.FormValue("name"),
		Latitude:            formFloat(c, "latitude"),
		Longitude:           formFloat(c, "longitude"),
		Address:             c.FormValue("address"),
		City:                c.FormValue("city"),
		State:               c.FormValue("state"),
		Country:             c.FormValue("country"),
		Zipcode:             c.FormValue("zipcode"),
		PhoneNumber:         c.FormValue("phone_number"),
		Email:               c.FormValue("email"),
		OpeningHours:        c.FormValue("opening_hours"),
		ManagerName:         c.FormValue("manager_name"),
		BranchOpeningDate:   c.FormValue("branch_opening_date"),
		BranchStatus:        c.FormValue("branch_status"),
		SeatingCapacity:     formInt(c, "seating_capacity"),
		ParkingAvailability: formBool(c, "parking_availability"),
		WifiAvailability:    formBool(c, "wifi_availability"),
	}
	if b.Name == "" || b.Address == "" || b.City == "" || b.Country == "" {
		return badRequest(c, "name, address, city and country are required")
	}

	if fh, err := c.FormFile("image"); err == nil && fh != nil {
		url, err := storage.SaveImage(fh)
		if err != nil {
			return fail(c, err)
		}
		b.ImageURL = url
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	created, err := h.Branches.Create(ctx, b)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *BranchHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	branches, err := h.Branches.List(ctx)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, branches)
}

func (h *BranchHandler) Get(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	b, err := h.Branches.GetByID(ctx, c.Param("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, b)
}

// Update applies the multipart fields that were actually submitted; omitted
// form fields leave the stored values untouched.
func (h *BranchHandler) Update(c echo.Context) error {
	var upd model.BranchUpdate

	strField := func(name string, dst **string) {
		if v := c.FormValue(name); v != "" {
			*dst = &v
		}
	}
	strField("name", &upd.Name)
	strField("address", &upd.Address)
	strField("city", &upd.City)
	strField("state", &upd.State)
	strField("country", &upd.Country)
	strField("zipcode", &upd.Zipcode)
	strField("phone_number", &upd.PhoneNumber)
	strField("email", &upd.Email)
	strField("opening_hours", &upd.OpeningHours)
	strField("manager_name", &upd.ManagerName)
	strField("branch_opening_date", &upd.BranchOpeningDate)
	strField("branch_status", &upd.BranchStatus)

	if v := c.FormValue("latitude"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return badRequest(c, "invalid latitude")
		}
		upd.Latitude = &f
	}
	if v := c.FormValue("longitude"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return badRequest(c, "invalid longitude")
		}
		upd.Longitude = &f
	}
	if v := c.FormValue("seating_capacity"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return badRequest(c, "invalid seating_capacity")
		}
		upd.SeatingCapacity = &n
	}
	if v := c.FormValue("parking_availability"); v != "" {
		b := formBool(c, "parking_availability")
		upd.ParkingAvailability = &b
	}
	if v := c.FormValue("wifi_availability"); v != "" {
		b := formBool(c, "wifi_availability")
		upd.WifiAvailability = &b
	}

	if fh, err := c.FormFile("image"); err == nil && fh != nil {
		url, err := storage.SaveImage(fh)
		if err != nil {
			return fail(c, err)
		}
		upd.ImageURL = &url
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	b, err := h.Branches.Update(ctx, c.Param("id"), upd)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, b)
}

func (h *BranchHandler) Delete(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Branches.Delete(ctx, c.Param("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"detail": "Branch deleted"})
}
