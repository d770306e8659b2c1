package handler

import (
    "context"
    "log"
    "net/http"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/restaurant-reservation/internal/model"
)

// MenuReader is the read-only slice of the menu store the public
// site needs.
type MenuReader interface {
    ListItems(ctx context.Context, availableOnly bool) ([]model.MenuItem, error)
    ListAddOns(ctx context.Context) ([]model.AddOn, error)
}

// MenuHandler serves the public menu pages.  Responses sit behind
// the redis response cache; the data only changes when an admin
// edits it.
type MenuHandler struct {
    Menu MenuReader
}

func NewMenuHandler(menu MenuReader) *MenuHandler {
    if menu == nil {
        panic("nil menu store passed to NewMenuHandler")
    }
    return &MenuHandler{Menu: menu}
}

// GetMenu handles GET /v1/menu.  Only available dishes are shown,
// grouped by category in a stable order.
func (h *MenuHandler) GetMenu(c echo.Context) error {
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    items, err := h.Menu.ListItems(ctx, true)
    if err != nil {
        log.Printf("menu: list items failed: %v", err)
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load menu"})
    }

    // Items arrive ordered by category then name; group them while
    // preserving that order.
    type section struct {
        Category string           `json:"category"`
        Items    []model.MenuItem `json:"items"`
    }
    sections := make([]section, 0)
    for _, it := range items {
        if n := len(sections); n == 0 || sections[n-1].Category != it.Category {
            sections = append(sections, section{Category: it.Category})
        }
        last := &sections[len(sections)-1]
        last.Items = append(last.Items, it)
    }
    return c.JSON(http.StatusOK, echo.Map{"menu": sections})
}

// GetAddOns handles GET /v1/addons.
func (h *MenuHandler) GetAddOns(c echo.Context) error {
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    addons, err := h.Menu.ListAddOns(ctx)
    if err != nil {
        log.Printf("menu: list add-ons failed: %v", err)
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load add-ons"})
    }
    return c.JSON(http.StatusOK, echo.Map{"addons": addons})
}
