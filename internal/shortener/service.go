package shortener

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/sundayezeilo/linkshort/base62"
	"github.com/sundayezeilo/linkshort/internal/errx"
)

const (
	MaxCodeLength      = 32
	MaxURLLength       = 2048
	DefaultListLimit   = 100
	MaxListLimit       = 1000
	DefaultCodeRetries = 3
)

// CreateLinkRequest represents the parameters for creating a new link.
type CreateLinkRequest struct {
	TargetURL  string
	CustomCode string // Optional: if empty, the code is derived from the link id
}

// Service defines the business logic operations for URL shortening.
type Service interface {
	Create(ctx context.Context, req CreateLinkRequest) (Link, error)
	Resolve(ctx context.Context, code string) (string, error)
	ListRecent(ctx context.Context, limit int) ([]Link, error)
}

type service struct {
	repo         Repository
	code         CodeFunc
	codeRetries  int
	maxListLimit int
}

// ServiceConfig holds configuration for the service.
type ServiceConfig struct {
	Code         CodeFunc // default: base-62 of the id
	CodeRetries  int      // fresh ids tried when a generated code is already taken (default: 3)
	MaxListLimit int      // larger list requests are clamped (default: 1000)
}

// NewService creates a new service instance.
func NewService(repo Repository, config *ServiceConfig) Service {
	if config == nil {
		config = &ServiceConfig{}
	}

	code := config.Code
	if code == nil {
		code = EncodeID
	}

	retries := config.CodeRetries
	if retries <= 0 {
		retries = DefaultCodeRetries
	}

	maxList := config.MaxListLimit
	if maxList <= 0 {
		maxList = MaxListLimit
	}

	return &service{
		repo:         repo,
		code:         code,
		codeRetries:  retries,
		maxListLimit: maxList,
	}
}

// EncodeID is the default CodeFunc. Ids come from a sequence starting at 1.
func EncodeID(id int64) string {
	return base62.Encode(uint64(id))
}

// Create stores a new link under the custom code, or under a code derived
// from its id when no custom code is given.
func (s *service) Create(ctx context.Context, req CreateLinkRequest) (Link, error) {
	const op = "shortener.service.Create"

	if err := validateURL(req.TargetURL); err != nil {
		return Link{}, errx.E(op, errx.Invalid, err)
	}

	if req.CustomCode != "" {
		if err := validateCode(req.CustomCode); err != nil {
			return Link{}, errx.E(op, errx.Invalid, err)
		}

		created, err := s.repo.CreateCustom(ctx, req.TargetURL, req.CustomCode)
		if err != nil {
			return Link{}, errx.Wrap(op, err)
		}
		return created, nil
	}

	// A generated code can only be taken by an earlier custom code. Skip to
	// the next id in that case.
	for range s.codeRetries {
		created, err := s.repo.CreateGenerated(ctx, req.TargetURL, s.code)
		if err == nil {
			return created, nil
		}
		if errx.KindOf(err) != errx.Duplicate {
			return Link{}, errx.Wrap(op, err)
		}
	}

	return Link{}, errx.E(op, errx.Storage,
		fmt.Errorf("no free generated code after %d attempts", s.codeRetries))
}

// Resolve counts a visit and returns the target of code.
func (s *service) Resolve(ctx context.Context, code string) (string, error) {
	const op = "shortener.service.Resolve"

	if code == "" || len(code) > MaxCodeLength {
		return "", errx.E(op, errx.NotFound, fmt.Errorf("no link with code %q", code))
	}

	link, err := s.repo.Resolve(ctx, code)
	if err != nil {
		return "", errx.Wrap(op, err)
	}
	return link.Target, nil
}

// ListRecent returns up to limit links, newest first.
func (s *service) ListRecent(ctx context.Context, limit int) ([]Link, error) {
	const op = "shortener.service.ListRecent"

	if limit < 1 {
		return nil, errx.E(op, errx.Invalid, errors.New("limit must be positive"))
	}
	limit = min(limit, s.maxListLimit)

	links, err := s.repo.ListRecent(ctx, limit)
	if err != nil {
		return nil, errx.Wrap(op, err)
	}
	return links, nil
}

func validateURL(rawURL string) error {
	if rawURL == "" {
		return errors.New("url cannot be empty")
	}
	if len(rawURL) > MaxURLLength {
		return fmt.Errorf("url too long (max %d characters)", MaxURLLength)
	}

	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return errors.New("invalid url format")
	}
	if !parsedURL.IsAbs() {
		return errors.New("url must be absolute and include a scheme (http or https)")
	}
	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return errors.New("url scheme must be http or https")
	}
	if parsedURL.Host == "" {
		return errors.New("url must include host")
	}
	return nil
}

func validateCode(code string) error {
	if code == "" {
		return errors.New("custom code cannot be empty")
	}
	if len(code) > MaxCodeLength {
		return fmt.Errorf("custom code too long (maximum %d characters)", MaxCodeLength)
	}
	for _, char := range code {
		if !isValidCodeChar(char) {
			return errors.New("custom code contains invalid characters (only alphanumeric, dash, and underscore allowed)")
		}
	}
	return nil
}

func isValidCodeChar(c rune) bool {
	switch {
	case c >= 'a' && c <= 'z':
		return true
	case c >= 'A' && c <= 'Z':
		return true
	case c >= '0' && c <= '9':
		return true
	case c == '-' || c == '_':
		return true
	default:
		return false
	}
}
