package middleware

import (
	"fmt"
	"strings"
	"time"

	"coursehub/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// GenerateJWT generates a JWT token carrying the trusted (userId, role) pair
func GenerateJWT(userID uint, name, role, email string) (string, error) {
	claims := jwt.MapClaims{
		"userId": userID,
		"name":   name,
		"role":   role,
		"email":  email,
		"iat":    time.Now().Unix(),
		"exp":    time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	jwtSecret := []byte(config.AppConfig.JWTKey)

	return token.SignedString(jwtSecret)
}

func parseToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.AppConfig.JWTKey), nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid or expired token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token payload")
	}
	// JWT numbers decode as float64
	if _, ok := claims["userId"].(float64); !ok {
		return nil, fmt.Errorf("invalid token payload")
	}
	return claims, nil
}

// JWTMiddleware is a middleware to check for valid JWT token in the request
func JWTMiddleware(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Missing or invalid Authorization header", nil)
	}
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid Authorization header format", nil)
	}

	claims, err := parseToken(authHeader[len("Bearer "):])
	if err != nil {
		return JsonResponse(c, fiber.StatusUnauthorized, false, err.Error(), nil)
	}

	userID, ok := claims["userId"].(float64)
	if !ok {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "invalid token payload", nil)
	}
	c.Locals("userId", uint(userID))
	role, _ := claims["role"].(string)
	c.Locals("role", role)

	return c.Next()
}

// OptionalJWTMiddleware populates the caller identity when a token is present
// but lets unauthenticated requests through. Used on public read paths whose
// response widens for owners and admins.
func OptionalJWTMiddleware(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return c.Next()
	}
	claims, err := parseToken(authHeader[len("Bearer "):])
	if err != nil {
		return c.Next()
	}
	userID, ok := claims["userId"].(float64)
	if !ok {
		return c.Next()
	}
	c.Locals("userId", uint(userID))
	role, _ := claims["role"].(string)
	c.Locals("role", role)
	return c.Next()
}

func JsonResponse(c *fiber.Ctx, statusCode int, status bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Validation failed!", errors)
}
