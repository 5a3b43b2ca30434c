package config

type DatabaseConfig struct {
	DSN     string `yaml:"dsn"`
	Migrate bool   `yaml:"migrate"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// S3Config : Driver "s3" (по умолчанию) или "minio"
type S3Config struct {
	Driver    string `yaml:"driver"`
	Bucket    string `yaml:"bucket"`
	Region    string `yaml:"region"`
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	UseSSL    bool   `yaml:"use_ssl"`
	PublicURL string `yaml:"public_url"`
	Local     bool   `yaml:"local"`
}

type JWTConfig struct {
	SecretKey      string `yaml:"secret_key"`
	AccessTokenTTL string `yaml:"access_token_ttl"`
	Issuer         string `yaml:"issuer"`
}

type AdminConfig struct {
	AdminToken string `yaml:"admin_token"`
}

// FilesConfig : настройки выдачи файлов
// TypePageSearch = false сохраняет поведение, при котором страница категории всегда игнорирует строку поиска
type FilesConfig struct {
	TypePageSearch bool   `yaml:"typePageSearch"`
	UploadMaxBytes int64  `yaml:"uploadMaxBytes"`
	RequestTimeout string `yaml:"requestTimeout"`
}
