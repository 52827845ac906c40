package config

import "time"

// #nosec
const (
	EnvironmentVariableNotDefined = "%s variable is not defined"
	EnvironmentVariableMalformed  = "%s variable is malformed: %w"

	IsAtRemote  = "IS_AT_REMOTE"
	ServerPort  = "PORT"
	Environment = "ENVIRONMENT"

	EnvironmentProduction = "production"

	MongodbUri                = "MONGODB_URI"
	MongodbUsername           = "MONGODB_USERNAME"
	MongodbPassword           = "MONGODB_PASSWORD"
	MongodbDatabase           = "MONGODB_DATABASE"
	MongodbUserCollection     = "MONGODB_USER_COLLECTION"
	MongodbBootcampCollection = "MONGODB_BOOTCAMP_COLLECTION"
	MongodbCourseCollection   = "MONGODB_COURSE_COLLECTION"
	MongodbReviewCollection   = "MONGODB_REVIEW_COLLECTION"

	JwtSecret       = "JWT_SECRET"
	JwtExpire       = "JWT_EXPIRE"
	JwtCookieExpire = "JWT_COOKIE_EXPIRE"
	BcryptCost      = "BCRYPT_COST"

	RateLimitWindow = "RATE_LIMIT_WINDOW"
	RateLimitMax    = "RATE_LIMIT_MAX"

	MaxFileUpload  = "MAX_FILE_UPLOAD"
	FileUploadPath = "FILE_UPLOAD_PATH"
	S3PhotoBucket  = "S3_PHOTO_BUCKET"

	GeocoderApiKey  = "GEOCODER_API_KEY"
	GeocoderBaseUrl = "GEOCODER_BASE_URL"

	SQSEmailQueueUrl = "SQS_EMAIL_QUEUE_URL"
	FromEmail        = "FROM_EMAIL"
	FromName         = "FROM_NAME"
	PublicUrl        = "PUBLIC_URL"
)

const (
	DefaultServerPort      = "5000"
	DefaultJwtExpire       = 30 * 24 * time.Hour
	DefaultCookieExpireDay = 30
	DefaultRateLimitWindow = 10 * time.Minute
	DefaultRateLimitMax    = 100
	DefaultMaxFileUpload   = 1000000
	DefaultFileUploadPath  = "./public/uploads"
	DefaultGeocoderBaseUrl = "https://www.mapquestapi.com/geocoding/v1/address"
)

var defaultCollections = map[string]string{
	MongodbUserCollection:     "users",
	MongodbBootcampCollection: "bootcamps",
	MongodbCourseCollection:   "courses",
	MongodbReviewCollection:   "reviews",
}

type MongodbConfig struct {
	Uri         string
	Username    string
	Password    string
	Database    string
	Collections map[string]string
}

type JwtConfig struct {
	Secret           []byte
	Expire           time.Duration
	CookieExpireDays int
	BcryptCost       int
}

type RateLimitConfig struct {
	Window time.Duration
	Max    int
}

type UploadConfig struct {
	MaxFileSize int64
	Path        string
	S3Bucket    string
}

type GeocoderConfig struct {
	ApiKey  string
	BaseUrl string
}

type EmailConfig struct {
	QueueUrl  string
	FromEmail string
	FromName  string
	// PublicUrl is the externally reachable origin used in emailed links.
	PublicUrl string
}
