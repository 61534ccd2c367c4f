package config

type config struct {
	Server  server  `yaml:"server" mapstructure:"server"`
	Mysql   mysql   `yaml:"mysql" mapstructure:"mysql"`
	Jwt     jwt     `yaml:"jwt" mapstructure:"jwt"`
	Storage storage `yaml:"storage" mapstructure:"storage"`
	Cors    cors    `yaml:"cors" mapstructure:"cors"`
}

type server struct {
	Addr               string `yaml:"addr"`
	MaxRequestBodySize int    `yaml:"max_request_body_size"`
}

type mysql struct {
	Addr     string `yaml:"addr"`
	Database string `yaml:"database"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Charset  string `yaml:"charset"`
}

type jwt struct {
	Secret    string `yaml:"secret"`
	Algorithm string `yaml:"algorithm"`
	ExpireSec int64  `yaml:"expire_sec"`
}

type storage struct {
	Backend string `yaml:"backend"` // minio 或 local
	Minio   minio  `yaml:"minio" mapstructure:"minio"`
	Local   local  `yaml:"local" mapstructure:"local"`
}

type minio struct {
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	Bucket    string `yaml:"bucket"`
	UseSSL    bool   `yaml:"use_ssl"`
}

type local struct {
	Dir       string `yaml:"dir"`
	UrlPrefix string `yaml:"url_prefix"`
}

type cors struct {
	AllowOrigins []string `yaml:"allow_origins"`
}
