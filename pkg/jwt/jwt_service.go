package jwt

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"GiveBridge-Backend/domain"
	"GiveBridge-Backend/internal/utils"
)

// Sessions live for a week; both dashboards poll with the same token until
// it expires.
const tokenLifetime = 7 * 24 * time.Hour

type (
	JWTService interface {
		GenerateToken(subjectID string, role string) string
		ValidateToken(token string) (*jwt.Token, error)
		GetSubjectByToken(token string) (string, string, error)
	}

	sessionClaim struct {
		SubjectID string `json:"sub_id"`
		Role      string `json:"role"`
		jwt.RegisteredClaims
	}

	jwtService struct {
		secretKey string
		issuer    string
	}
)

func getSecretKey() string {
	utils.LoadConfig()
	return utils.GetConfig("JWT_SECRET")
}

func NewJWTService() JWTService {
	return &jwtService{
		secretKey: getSecretKey(),
		issuer:    "GIVEBRIDGE",
	}
}

func (j *jwtService) GenerateToken(subjectID string, role string) string {
	claims := sessionClaim{
		subjectID,
		role,
		jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenLifetime)),
			Issuer:    j.issuer,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tx, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		log.Println(err)
	}
	return tx
}

func (j *jwtService) parseToken(t *jwt.Token) (any, error) {
	if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
	}
	return []byte(j.secretKey), nil
}

func (j *jwtService) ValidateToken(token string) (*jwt.Token, error) {
	return jwt.ParseWithClaims(token, &sessionClaim{}, j.parseToken)
}

func (j *jwtService) GetSubjectByToken(token string) (string, string, error) {
	parsed, err := j.ValidateToken(token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", "", domain.ErrTokenExpired
		}
		return "", "", domain.ErrTokenInvalid
	}
	if !parsed.Valid {
		return "", "", domain.ErrTokenInvalid
	}

	claims := parsed.Claims.(*sessionClaim)
	return claims.SubjectID, claims.Role, nil
}
