package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/kr/pretty"
	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	ServerPort  string
	Environment string
	Mongodb     MongodbConfig
	Jwt         JwtConfig
	RateLimit   RateLimitConfig
	Upload      UploadConfig
	Geocoder    GeocoderConfig
	Email       EmailConfig
}

func ReadConfig() (*Config, error) {
	serverPort := os.Getenv(ServerPort)
	if serverPort == "" {
		serverPort = DefaultServerPort
		fmt.Printf("server port environment variable is empty its declared %s by default\n", DefaultServerPort)
	}

	mongodbConfig, err := ReadMongoDbConfig()
	if err != nil {
		return nil, err
	}

	jwtConfig, err := ReadJwtConfig()
	if err != nil {
		return nil, err
	}

	rateLimitConfig, err := ReadRateLimitConfig()
	if err != nil {
		return nil, err
	}

	uploadConfig, err := ReadUploadConfig()
	if err != nil {
		return nil, err
	}

	geocoderConfig, err := ReadGeocoderConfig()
	if err != nil {
		return nil, err
	}

	emailConfig, err := ReadEmailConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		ServerPort:  serverPort,
		Environment: os.Getenv(Environment),
		Mongodb:     mongodbConfig,
		Jwt:         jwtConfig,
		RateLimit:   rateLimitConfig,
		Upload:      uploadConfig,
		Geocoder:    geocoderConfig,
		Email:       emailConfig,
	}, nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == EnvironmentProduction
}

// Print writes the configuration with credentials redacted.
func (c *Config) Print() {
	redacted := *c
	redacted.Mongodb.Password = "***"
	redacted.Jwt.Secret = []byte("***")
	redacted.Geocoder.ApiKey = "***"
	_, _ = pretty.Println(redacted)
}

func ReadMongoDbConfig() (MongodbConfig, error) {
	mongodbUri := os.Getenv(MongodbUri)
	if mongodbUri == "" {
		return MongodbConfig{}, fmt.Errorf(EnvironmentVariableNotDefined, MongodbUri)
	}

	mongodbDatabase := os.Getenv(MongodbDatabase)
	if mongodbDatabase == "" {
		return MongodbConfig{}, fmt.Errorf(EnvironmentVariableNotDefined, MongodbDatabase)
	}

	collections := DefaultCollections()
	for key := range collections {
		if name := os.Getenv(key); name != "" {
			collections[key] = name
		}
	}

	return MongodbConfig{
		Uri:         mongodbUri,
		Username:    os.Getenv(MongodbUsername),
		Password:    os.Getenv(MongodbPassword),
		Database:    mongodbDatabase,
		Collections: collections,
	}, nil
}

func DefaultCollections() map[string]string {
	collections := make(map[string]string, len(defaultCollections))
	for key, name := range defaultCollections {
		collections[key] = name
	}

	return collections
}

func ReadJwtConfig() (JwtConfig, error) {
	secret := os.Getenv(JwtSecret)
	if secret == "" {
		return JwtConfig{}, fmt.Errorf(EnvironmentVariableNotDefined, JwtSecret)
	}

	expire, err := readDuration(JwtExpire, DefaultJwtExpire)
	if err != nil {
		return JwtConfig{}, err
	}

	cookieExpireDays, err := readInt(JwtCookieExpire, DefaultCookieExpireDay)
	if err != nil {
		return JwtConfig{}, err
	}

	bcryptCost, err := readInt(BcryptCost, bcrypt.DefaultCost)
	if err != nil {
		return JwtConfig{}, err
	}
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		return JwtConfig{}, fmt.Errorf(
			EnvironmentVariableMalformed,
			BcryptCost,
			fmt.Errorf("cost must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost),
		)
	}

	return JwtConfig{
		Secret:           []byte(secret),
		Expire:           expire,
		CookieExpireDays: cookieExpireDays,
		BcryptCost:       bcryptCost,
	}, nil
}

func ReadRateLimitConfig() (RateLimitConfig, error) {
	window, err := readDuration(RateLimitWindow, DefaultRateLimitWindow)
	if err != nil {
		return RateLimitConfig{}, err
	}

	maxRequests, err := readInt(RateLimitMax, DefaultRateLimitMax)
	if err != nil {
		return RateLimitConfig{}, err
	}

	return RateLimitConfig{
		Window: window,
		Max:    maxRequests,
	}, nil
}

func ReadUploadConfig() (UploadConfig, error) {
	maxFileSize, err := readInt(MaxFileUpload, DefaultMaxFileUpload)
	if err != nil {
		return UploadConfig{}, err
	}

	path := os.Getenv(FileUploadPath)
	if path == "" {
		path = DefaultFileUploadPath
	}

	return UploadConfig{
		MaxFileSize: int64(maxFileSize),
		Path:        path,
		S3Bucket:    os.Getenv(S3PhotoBucket),
	}, nil
}

func ReadGeocoderConfig() (GeocoderConfig, error) {
	apiKey := os.Getenv(GeocoderApiKey)
	if apiKey == "" {
		return GeocoderConfig{}, fmt.Errorf(EnvironmentVariableNotDefined, GeocoderApiKey)
	}

	baseUrl := os.Getenv(GeocoderBaseUrl)
	if baseUrl == "" {
		baseUrl = DefaultGeocoderBaseUrl
	}

	return GeocoderConfig{
		ApiKey:  apiKey,
		BaseUrl: baseUrl,
	}, nil
}

func ReadEmailConfig() (EmailConfig, error) {
	queueUrl := os.Getenv(SQSEmailQueueUrl)
	if queueUrl == "" {
		return EmailConfig{}, fmt.Errorf(EnvironmentVariableNotDefined, SQSEmailQueueUrl)
	}

	fromEmail := os.Getenv(FromEmail)
	if fromEmail == "" {
		return EmailConfig{}, fmt.Errorf(EnvironmentVariableNotDefined, FromEmail)
	}

	publicUrl := os.Getenv(PublicUrl)
	if publicUrl == "" {
		return EmailConfig{}, fmt.Errorf(EnvironmentVariableNotDefined, PublicUrl)
	}
	parsedUrl, err := url.Parse(publicUrl)
	if err != nil || (parsedUrl.Scheme != "http" && parsedUrl.Scheme != "https") || parsedUrl.Host == "" {
		return EmailConfig{}, fmt.Errorf(EnvironmentVariableMalformed, PublicUrl, fmt.Errorf("%q is not an absolute http url", publicUrl))
	}

	return EmailConfig{
		QueueUrl:  queueUrl,
		FromEmail: fromEmail,
		FromName:  os.Getenv(FromName),
		PublicUrl: strings.TrimSuffix(publicUrl, "/"),
	}, nil
}

func readDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	duration, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf(EnvironmentVariableMalformed, key, err)
	}
	if duration <= 0 {
		return 0, fmt.Errorf(EnvironmentVariableMalformed, key, errors.New("duration must be positive"))
	}

	return duration, nil
}

func readInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	number, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf(EnvironmentVariableMalformed, key, err)
	}
	if number <= 0 {
		return 0, fmt.Errorf(EnvironmentVariableMalformed, key, errors.New("value must be positive"))
	}

	return number, nil
}
