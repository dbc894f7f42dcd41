package controller

import (
	"errors"
	"html/template"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"assurance_backend/internals/features/users/auth/dto"
	"assurance_backend/internals/features/users/auth/service"
	helper "assurance_backend/internals/helpers"
	authMw "assurance_backend/internals/middlewares/auth"
)

type AuthController struct {
	Service      *service.AuthService
	Validate     *validator.Validate
	CookieSecure bool
}

func NewAuthController(svc *service.AuthService, v *validator.Validate) *AuthController {
	return &AuthController{Service: svc, Validate: v, CookieSecure: svc.Config.CookieSecure}
}

// POST /api/auth/signup
func (ac *AuthController) Signup(c *fiber.Ctx) error {
	var req dto.SignupRequest
	if ok, resp := helper.BindJSON(c, ac.Validate, &req); !ok {
		return resp
	}

	user, _, err := ac.Service.Signup(c.UserContext(), req)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			return helper.JsonDuplicate(c, "Email already registered")
		}
		log.Printf("[ERROR] signup: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "")
	}

	return helper.JsonCreated(c,
		"Account created successfully! Please check your email to verify your account.",
		dto.SignupResponse{UserID: user.ID})
}

var verifyPage = template.Must(template.New("verify").Parse(`<!DOCTYPE html>
<html>
<head><title>{{.Title}}</title>
<style>
body { font-family: Arial, sans-serif; display: flex; justify-content: center; align-items: center; height: 100vh; margin: 0; background: linear-gradient(135deg, #FFD700 0%, #4169E1 100%); }
.container { background: white; padding: 40px; border-radius: 10px; text-align: center; }
h1 { color: #4169E1; }
a { background: #4169E1; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px; display: inline-block; margin-top: 20px; }
</style>
</head>
<body><div class="container"><h1>{{.Title}}</h1><p>{{.Body}}</p>{{if .Login}}<a href="/login.html">Go to Login</a>{{end}}</div></body>
</html>`))

type verifyView struct {
	Title string
	Body  string
	Login bool
}

func renderVerify(c *fiber.Ctx, status int, v verifyView) error {
	var sb strings.Builder
	if err := verifyPage.Execute(&sb, v); err != nil {
		return err
	}
	c.Type("html", "utf-8")
	return c.Status(status).SendString(sb.String())
}

// GET /api/auth/verify/:token
func (ac *AuthController) Verify(c *fiber.Ctx) error {
	err := ac.Service.Verify(c.UserContext(), c.Params("token"))
	switch {
	case err == nil:
		return renderVerify(c, fiber.StatusOK, verifyView{
			Title: "Email Verified Successfully!",
			Body:  "Your account has been verified. You can now log in to the system.",
			Login: true,
		})
	case errors.Is(err, service.ErrInvalidVerification):
		return renderVerify(c, fiber.StatusOK, verifyView{
			Title: "Invalid or Expired Link",
			Body:  "The verification link is invalid or has expired.",
		})
	default:
		log.Printf("[ERROR] verify: %v", err)
		return renderVerify(c, fiber.StatusInternalServerError, verifyView{
			Title: "Verification Failed",
			Body:  "An error occurred during verification.",
		})
	}
}

// POST /api/auth/login
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if ok, resp := helper.BindJSON(c, ac.Validate, &req); !ok {
		return resp
	}

	res, err := ac.Service.Login(c.UserContext(), req)
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, service.ErrNotVerified):
		return helper.JsonError(c, fiber.StatusForbidden, "Please verify your email before logging in")
	case err != nil:
		log.Printf("[ERROR] login: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "")
	}

	c.Cookie(&fiber.Cookie{
		Name:     authMw.TokenCookie,
		Value:    res.Token,
		Path:     "/",
		Expires:  res.ExpiresAt,
		HTTPOnly: true,
		Secure:   ac.CookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return helper.JsonOK(c, "Login successful", res)
}

// POST /api/auth/logout
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	if err := ac.Service.Logout(c.UserContext(), authMw.RawToken(c)); err != nil {
		log.Printf("[ERROR] logout blacklist: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "")
	}

	c.Cookie(&fiber.Cookie{
		Name:     authMw.TokenCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		Secure:   ac.CookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return helper.JsonOK(c, "Logged out successfully", nil)
}

// GET /api/auth/me
func (ac *AuthController) Me(c *fiber.Ctx) error {
	userID, ok := authMw.UserIDFrom(c)
	if !ok {
		return helper.JsonErrorCode(c, fiber.StatusUnauthorized, helper.CodeTokenInvalid, "Invalid user in token")
	}
	user, err := ac.Service.Me(c.UserContext(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		log.Printf("[ERROR] me: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "")
	}
	return helper.JsonOK(c, "ok", user)
}
