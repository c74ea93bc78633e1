package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"gigboard/internal/service"
)

type AuthController struct {
	auth *service.AuthService
}

func NewAuthController(auth *service.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

type signupInput struct {
	FirstName string   `json:"first_name" binding:"required"`
	LastName  string   `json:"last_name" binding:"required"`
	Email     string   `json:"email" binding:"required,email"`
	Password  string   `json:"password" binding:"required"`
	Category  string   `json:"category" binding:"required"`
	Phone     string   `json:"phone" binding:"required"`
	PhotoURL  string   `json:"photo_url"`
	Expertise []string `json:"expertise"`
}

func (ct *AuthController) Signup(c *gin.Context) {
	var input signupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := ct.auth.Register(c.Request.Context(), service.RegisterInput{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Password:  input.Password,
		Category:  input.Category,
		Phone:     input.Phone,
		PhotoURL:  input.PhotoURL,
		Expertise: input.Expertise,
	})
	if err != nil {
		respondError(c, "Signup failed", err)
		return
	}

	logrus.WithField("email", result.User.Email).Info("account created")
	c.JSON(http.StatusCreated, gin.H{"token": result.Token, "user": result.User})
}

func (ct *AuthController) Login(c *gin.Context) {
	var body struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := ct.auth.Login(c.Request.Context(), body.Email, body.Password)
	if err != nil {
		respondError(c, "Login failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": result.Token, "user": result.User})
}
