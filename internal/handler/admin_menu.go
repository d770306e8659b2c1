package handler

import (
    "context"
    "errors"
    "log"
    "net/http"
    "strconv"
    "strings"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/restaurant-reservation/internal/model"
    "github.com/iliyamo/restaurant-reservation/internal/repository"
)

// MenuStore is the full menu surface the admin panel manages.
type MenuStore interface {
    MenuReader
    GetItem(ctx context.Context, id uint64) (model.MenuItem, error)
    CreateItem(ctx context.Context, m model.MenuItem) (model.MenuItem, error)
    UpdateItem(ctx context.Context, m model.MenuItem) (model.MenuItem, error)
    DeleteItem(ctx context.Context, id uint64) error
    GetAddOn(ctx context.Context, id uint64) (model.AddOn, error)
    CreateAddOn(ctx context.Context, a model.AddOn) (model.AddOn, error)
    UpdateAddOn(ctx context.Context, a model.AddOn) (model.AddOn, error)
    DeleteAddOn(ctx context.Context, id uint64) error
}

// AdminMenuHandler serves menu-content CRUD behind the session gate.
type AdminMenuHandler struct {
    Menu MenuStore
}

func NewAdminMenuHandler(menu MenuStore) *AdminMenuHandler {
    if menu == nil {
        panic("nil menu store passed to NewAdminMenuHandler")
    }
    return &AdminMenuHandler{Menu: menu}
}

type menuItemReq struct {
    Name        string `json:"name"`
    Description string `json:"description"`
    PriceCents  uint32 `json:"price_cents"`
    Category    string `json:"category"`
    ImagePath   string `json:"image_path"`
    IsAvailable *bool  `json:"is_available"` // nil defaults to true on create
}

func (r *menuItemReq) toModel(id uint64) (model.MenuItem, error) {
    name := strings.TrimSpace(r.Name)
    category := strings.TrimSpace(r.Category)
    if name == "" || category == "" {
        return model.MenuItem{}, errors.New("name and category are required")
    }
    available := true
    if r.IsAvailable != nil {
        available = *r.IsAvailable
    }
    return model.MenuItem{
        ID:          id,
        Name:        name,
        Description: strings.TrimSpace(r.Description),
        PriceCents:  r.PriceCents,
        Category:    category,
        ImagePath:   strings.TrimSpace(r.ImagePath),
        IsAvailable: available,
    }, nil
}

// ListItems handles GET /v1/admin/menu-items, unavailable dishes
// included.
func (h *AdminMenuHandler) ListItems(c echo.Context) error {
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    items, err := h.Menu.ListItems(ctx, false)
    if err != nil {
        log.Printf("admin: list menu items failed: %v", err)
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load menu items"})
    }
    return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// CreateItem handles POST /v1/admin/menu-items.
func (h *AdminMenuHandler) CreateItem(c echo.Context) error {
    var req menuItemReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    m, err := req.toModel(0)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    created, err := h.Menu.CreateItem(ctx, m)
    if err != nil {
        log.Printf("admin: create menu item failed: %v", err)
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create menu item"})
    }
    return c.JSON(http.StatusCreated, echo.Map{"item": created})
}

// UpdateItem handles PUT /v1/admin/menu-items/:id.
func (h *AdminMenuHandler) UpdateItem(c echo.Context) error {
    id, err := strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil || id == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid menu item id"})
    }
    var req menuItemReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    m, err := req.toModel(id)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    if _, err := h.Menu.GetItem(ctx, id); err != nil {
        if errors.Is(err, repository.ErrNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "menu item not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load menu item"})
    }
    updated, err := h.Menu.UpdateItem(ctx, m)
    if err != nil {
        log.Printf("admin: update menu item %d failed: %v", id, err)
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update menu item"})
    }
    return c.JSON(http.StatusOK, echo.Map{"item": updated})
}

// DeleteItem handles DELETE /v1/admin/menu-items/:id.
func (h *AdminMenuHandler) DeleteItem(c echo.Context) error {
    id, err := strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil || id == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid menu item id"})
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    if err := h.Menu.DeleteItem(ctx, id); err != nil {
        if errors.Is(err, repository.ErrNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "menu item not found"})
        }
        log.Printf("admin: delete menu item %d failed: %v", id, err)
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to delete menu item"})
    }
    return c.NoContent(http.StatusNoContent)
}

type addOnReq struct {
    Name       string `json:"name"`
    PriceCents uint32 `json:"price_cents"`
    ImagePath  string `json:"image_path"`
}

// CreateAddOn handles POST /v1/admin/addons.
func (h *AdminMenuHandler) CreateAddOn(c echo.Context) error {
    var req addOnReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    name := strings.TrimSpace(req.Name)
    if name == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    created, err := h.Menu.CreateAddOn(ctx, model.AddOn{
        Name:       name,
        PriceCents: req.PriceCents,
        ImagePath:  strings.TrimSpace(req.ImagePath),
    })
    if err != nil {
        log.Printf("admin: create add-on failed: %v", err)
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create add-on"})
    }
    return c.JSON(http.StatusCreated, echo.Map{"addon": created})
}

// UpdateAddOn handles PUT /v1/admin/addons/:id.
func (h *AdminMenuHandler) UpdateAddOn(c echo.Context) error {
    id, err := strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil || id == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid add-on id"})
    }
    var req addOnReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    name := strings.TrimSpace(req.Name)
    if name == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    if _, err := h.Menu.GetAddOn(ctx, id); err != nil {
        if errors.Is(err, repository.ErrNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "add-on not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load add-on"})
    }
    updated, err := h.Menu.UpdateAddOn(ctx, model.AddOn{
        ID:         id,
        Name:       name,
        PriceCents: req.PriceCents,
        ImagePath:  strings.TrimSpace(req.ImagePath),
    })
    if err != nil {
        log.Printf("admin: update add-on %d failed: %v", id, err)
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update add-on"})
    }
    return c.JSON(http.StatusOK, echo.Map{"addon": updated})
}

// DeleteAddOn handles DELETE /v1/admin/addons/:id.
func (h *AdminMenuHandler) DeleteAddOn(c echo.Context) error {
    id, err := strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil || id == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid add-on id"})
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    if err := h.Menu.DeleteAddOn(ctx, id); err != nil {
        if errors.Is(err, repository.ErrNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "add-on not found"})
        }
        log.Printf("admin: delete add-on %d failed: %v", id, err)
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to delete add-on"})
    }
    return c.NoContent(http.StatusNoContent)
}
