package core

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// NewRouter constructs the Gin engine with routes wired. products may be nil
// (PRODUCT_STORE=none), in which case the product routes are not mounted.
func NewRouter(cfg Config, authService AuthService, tm *TokenManager, users UserRepository, products ProductRepository) *gin.Engine {
	r := gin.Default()

	r.Use(RequestIDMiddleware())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Welcome to the REST API!")
	})

	r.GET("/users", func(c *gin.Context) {
		rows, err := users.List(c.Request.Context())
		if err != nil {
			log.Printf("failed to list users: %v", err)
			respondError(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "internal server error")
			return
		}
		c.JSON(http.StatusOK, rows)
	})

	r.POST("/register", func(c *gin.Context) {
		var req struct {
			Name     string `json:"name"`
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid json")
			return
		}
		// Validation short-circuits before any store call.
		if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" || req.Password == "" {
			respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "all fields are required")
			return
		}

		if err := authService.Register(c.Request.Context(), req.Name, req.Email, req.Password); err != nil {
			log.Printf("failed to register user: %v", err)
			respondError(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "database error")
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully"})
	})

	r.POST("/login", func(c *gin.Context) {
		var req struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid json")
			return
		}

		token, err := authService.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, ErrInvalidCredentials) {
				respondError(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "invalid credentials")
				return
			}
			log.Printf("failed to login user: %v", err)
			respondError(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "database error")
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Login successful", "token": token})
	})

	r.GET("/profile", RequireToken(tm), func(c *gin.Context) {
		userID, ok := userIDFromContext(c)
		if !ok {
			respondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "unauthorized")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to your profile!", "userId": userID})
	})

	if products != nil {
		r.POST("/add-product", func(c *gin.Context) {
			var req struct {
				Name     string  `json:"name"`
				Price    float64 `json:"price"`
				Category string  `json:"category"`
			}
			if err := c.ShouldBindJSON(&req); err != nil {
				respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid json")
				return
			}
			if strings.TrimSpace(req.Name) == "" {
				respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "product name is required")
				return
			}

			p, err := products.Add(c.Request.Context(), req.Name, req.Price, req.Category)
			if err != nil {
				log.Printf("failed to add product: %v", err)
				respondError(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "database error")
				return
			}
			c.JSON(http.StatusOK, p)
		})

		r.GET("/products", func(c *gin.Context) {
			items, err := products.List(c.Request.Context())
			if err != nil {
				log.Printf("failed to list products: %v", err)
				respondError(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "database error")
				return
			}
			c.JSON(http.StatusOK, items)
		})
	}

	return r
}
