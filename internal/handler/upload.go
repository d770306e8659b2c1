package handler

import (
    "fmt"
    "io"
    "log"
    "net/http"
    "os"
    "path/filepath"
    "strings"
    "time"

    "github.com/labstack/echo/v4"
)

// allowedFolders whitelists the upload destinations.  Anything else
// is rejected before the filesystem is touched.
var allowedFolders = map[string]bool{
    "menu-item": true,
    "add-ons":   true,
}

// UploadHandler stores menu imagery under Root, namespaced by
// folder.  Files are served back under the /uploads static route.
type UploadHandler struct {
    Root string
}

func NewUploadHandler(root string) *UploadHandler {
    if root == "" {
        panic("empty upload root passed to NewUploadHandler")
    }
    return &UploadHandler{Root: root}
}

// sanitizeFilename keeps the base name and replaces anything outside
// a conservative character set, so a crafted filename can never
// escape the upload directory.
func sanitizeFilename(name string) string {
    name = filepath.Base(name)
    var b strings.Builder
    for _, r := range name {
        switch {
        case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
            r == '.', r == '-', r == '_':
            b.WriteRune(r)
        default:
            b.WriteRune('_')
        }
    }
    s := b.String()
    if s == "" || s == "." || s == ".." {
        s = "file"
    }
    return s
}

// Upload handles POST /v1/admin/uploads.  The multipart form must
// carry a "file" part and a "folder" field naming one of the two
// allowed destinations.  Missing input is 400; a write failure is a
// generic 500.  On success the response carries the public-relative
// path of the stored file.
func (h *UploadHandler) Upload(c echo.Context) error {
    folder := strings.TrimSpace(c.FormValue("folder"))
    if !allowedFolders[folder] {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "folder must be menu-item or add-ons"})
    }

    fh, err := c.FormFile("file")
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "file is required"})
    }

    src, err := fh.Open()
    if err != nil {
        log.Printf("upload: open multipart file failed: %v", err)
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "upload failed"})
    }
    defer src.Close()

    dir := filepath.Join(h.Root, folder)
    if err := os.MkdirAll(dir, 0o755); err != nil {
        log.Printf("upload: mkdir %s failed: %v", dir, err)
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "upload failed"})
    }

    // Timestamp prefix keeps names unique and sortable by arrival.
    name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), sanitizeFilename(fh.Filename))
    dstPath := filepath.Join(dir, name)

    dst, err := os.Create(dstPath)
    if err != nil {
        log.Printf("upload: create %s failed: %v", dstPath, err)
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "upload failed"})
    }
    defer dst.Close()

    if _, err := io.Copy(dst, src); err != nil {
        log.Printf("upload: write %s failed: %v", dstPath, err)
        _ = os.Remove(dstPath)
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "upload failed"})
    }

    return c.JSON(http.StatusOK, echo.Map{"path": "/uploads/" + folder + "/" + name})
}
