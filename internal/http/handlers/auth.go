package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/Prathamraj05/railbooker-zenith/internal/domain"
	"github.com/Prathamraj05/railbooker-zenith/internal/domain/models"
	"github.com/Prathamraj05/railbooker-zenith/internal/http/middleware"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/auth/login
func (a *API) Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	rec, err := a.Users.FindByEmail(req.Email)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Email or password is incorrect"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(rec.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Email or password is incorrect"})
		return
	}

	role := middleware.RoleUser
	if rec.User.IsAdmin {
		role = middleware.RoleAdmin
	}
	token, err := middleware.IssueToken(a.JWTSecret, rec.User.ID, role, time.Now().Add(24*time.Hour).Unix())
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "could not issue token", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  rec.User,
	})
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// POST /api/auth/register
func (a *API) Register(c *gin.Context) {
	var req registerRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.Name == "" || req.Email == "" || len(req.Password) < 6 {
		RespondDomainError(c, domain.ValidationError{Field: "credentials", Msg: "name, email and a password of at least 6 characters are required"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "could not hash password", err)
		return
	}

	user, err := a.Users.Create(models.User{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	}, string(hash))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user": user})
}
