package middleware // reusable HTTP middleware for the admin panel

import (
    "context"
    "net/http"
    "strconv"
    "strings"
    "time"

    "github.com/golang-jwt/jwt/v5"
    "github.com/labstack/echo/v4"
)

// sessionCheckTimeout bounds the account lookup performed while a
// request is being authenticated.  A stalled check resolves to
// unauthenticated instead of hanging the request.
const sessionCheckTimeout = 3 * time.Second

// SessionCheck verifies that the authenticated subject still maps to
// a live admin account (not deleted, not deactivated).  It runs
// under a bounded context; any error means the session is invalid.
type SessionCheck func(ctx context.Context, userID uint64) error

// SessionGate returns middleware guarding the admin routes.  It
// validates a Bearer HS256 access token signed with secret and, when
// check is non-nil, confirms the account is still active.  On
// success the token's subject and role claims are stored in the echo
// context under "user_id" and "role" for downstream handlers.
//
// Every rejection is a 401 carrying a Location header pointing at
// loginPath so a browser client can issue exactly one redirect to
// the login screen.  The gate holds no state between requests; each
// request is evaluated from scratch.
func SessionGate(secret, loginPath string, check SessionCheck) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            auth := c.Request().Header.Get("Authorization")
            if !strings.HasPrefix(auth, "Bearer ") {
                return unauthenticated(c, loginPath, "missing bearer token")
            }
            raw := strings.TrimPrefix(auth, "Bearer ")

            tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
                if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
                    return nil, echo.ErrUnauthorized
                }
                return []byte(secret), nil
            })
            if err != nil || !tok.Valid {
                return unauthenticated(c, loginPath, "invalid token")
            }

            claims, ok := tok.Claims.(jwt.MapClaims)
            if !ok {
                return unauthenticated(c, loginPath, "invalid claims")
            }
            userID, ok := subjectID(claims)
            if !ok {
                return unauthenticated(c, loginPath, "invalid claims")
            }

            if check != nil {
                ctx, cancel := context.WithTimeout(c.Request().Context(), sessionCheckTimeout)
                err := check(ctx, userID)
                cancel()
                if err != nil {
                    // Deadline overruns land here too: an account
                    // check that never resolves is treated as an
                    // unauthenticated session, never as an open gate.
                    return unauthenticated(c, loginPath, "session no longer valid")
                }
            }

            c.Set("user_id", userID)
            c.Set("role", claims["role"])
            return next(c)
        }
    }
}

// unauthenticated writes the gate's single rejection shape: 401 plus
// the login route in Location.  No protected content is rendered.
func unauthenticated(c echo.Context, loginPath, msg string) error {
    if loginPath != "" {
        c.Response().Header().Set("Location", loginPath)
    }
    return c.JSON(http.StatusUnauthorized, echo.Map{"error": msg, "login": loginPath})
}

// subjectID extracts the numeric subject claim.  JSON numbers decode
// as float64; string subjects are tolerated for robustness.
func subjectID(claims jwt.MapClaims) (uint64, bool) {
    switch v := claims["sub"].(type) {
    case float64:
        if v >= 0 {
            return uint64(v), true
        }
    case string:
        if n, err := strconv.ParseUint(v, 10, 64); err == nil {
            return n, true
        }
    }
    return 0, false
}
