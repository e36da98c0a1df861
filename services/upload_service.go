package services

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// UploadConfig holds the Cloudinary account settings.
type UploadConfig struct {
	CloudName string
	APIKey    string
	APISecret string
	BaseURL   string
	Folder    string
}

// UploadService pushes base64 image payloads to the Cloudinary upload API
// and hands back the public URL.
type UploadService struct {
	config     *UploadConfig
	httpClient *http.Client
}

var (
	uploadService *UploadService
	uploadOnce    sync.Once
)

// GetUploadService returns the shared UploadService configured from the
// environment.
func GetUploadService() *UploadService {
	uploadOnce.Do(func() {
		cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
		apiKey := os.Getenv("CLOUDINARY_API_KEY")
		apiSecret := os.Getenv("CLOUDINARY_API_SECRET")

		if cloudName == "" || apiKey == "" || apiSecret == "" {
			fmt.Println("WARNING: Cloudinary credentials missing, image upload will fail")
		}

		baseURL := os.Getenv("CLOUDINARY_API_URL")
		if baseURL == "" {
			baseURL = "https://api.cloudinary.com/v1_1"
		}

		uploadService = NewUploadService(&UploadConfig{
			CloudName: cloudName,
			APIKey:    apiKey,
			APISecret: apiSecret,
			BaseURL:   baseURL,
			Folder:    "udyog_saathi",
		})
	})
	return uploadService
}

func NewUploadService(config *UploadConfig) *UploadService {
	return &UploadService{
		config: config,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// signature computes the Cloudinary request signature: SHA-1 over the
// signed params sorted by name, concatenated with the API secret.
func (us *UploadService) signature(folder, publicID string, timestamp int64) string {
	toSign := fmt.Sprintf("folder=%s&public_id=%s&timestamp=%d%s",
		folder, publicID, timestamp, us.config.APISecret)
	sum := sha1.Sum([]byte(toSign))
	return hex.EncodeToString(sum[:])
}

type uploadResponse struct {
	SecureURL string `json:"secure_url"`
	Error     struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Upload sends one data-URI payload and returns its secure URL.
func (us *UploadService) Upload(dataURI string) (string, error) {
	publicID := uuid.NewString()
	timestamp := time.Now().Unix()

	form := url.Values{}
	form.Set("file", dataURI)
	form.Set("api_key", us.config.APIKey)
	form.Set("timestamp", fmt.Sprintf("%d", timestamp))
	form.Set("folder", us.config.Folder)
	form.Set("public_id", publicID)
	form.Set("signature", us.signature(us.config.Folder, publicID, timestamp))

	endpoint := fmt.Sprintf("%s/%s/image/upload", us.config.BaseURL, us.config.CloudName)
	resp, err := us.httpClient.Post(endpoint, "application/x-www-form-urlencoded",
		strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var out uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("cloudinary returned status %d: %s", resp.StatusCode, out.Error.Message)
	}
	if out.SecureURL == "" {
		return "", fmt.Errorf("cloudinary response missing secure_url")
	}
	return out.SecureURL, nil
}
