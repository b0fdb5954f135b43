package staff

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/ssraminder/cethos-web-redesign-sub001/src/models"
	"github.com/ssraminder/cethos-web-redesign-sub001/src/utils"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

// Service manages the internal reviewer accounts behind the console.
type Service struct {
	col *mongo.Collection
}

func NewService(col *mongo.Collection) *Service {
	return &Service{col: col}
}

// Authenticate checks the password and issues a signed token for the console.
func (s *Service) Authenticate(ctx context.Context, email, password string) (string, *models.Staff, error) {
	var member models.Staff
	err := s.col.FindOne(ctx, bson.M{"email": strings.ToLower(email)}).Decode(&member)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(member.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(member.ID.Hex(), member.Email, member.Role)
	if err != nil {
		return "", nil, err
	}
	return token, &member, nil
}

// GetByID loads one account, for /auth/me.
func (s *Service) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Staff, error) {
	var member models.Staff
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&member)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.New("staff member not found")
		}
		return nil, err
	}
	return &member, nil
}

// EnsureDefaultAdmin seeds the first reviewer account from config so a fresh
// deployment has a way into the console. Does nothing if the email exists or
// no credentials are configured.
func (s *Service) EnsureDefaultAdmin(ctx context.Context, email, password, name string) error {
	if email == "" || password == "" {
		return nil
	}
	email = strings.ToLower(email)

	count, err := s.col.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = s.col.InsertOne(ctx, models.Staff{
		Email:        email,
		Name:         name,
		Role:         "admin",
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	})
	if err != nil {
		return err
	}
	log.Println("✅ Seeded default admin account:", email)
	return nil
}
