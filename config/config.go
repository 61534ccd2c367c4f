package config

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var ConfigInfo config

// 使用Viper的好处在于支持多路径查找配置文件 同时viper对于大小写并不敏感 都是统一进行处理
func Init() {
	wd, _ := os.Getwd()
	logrus.Infof("Current working directory: %s", wd)

	viper.SetConfigType("yaml")
	viper.SetConfigName("config.yml")

	configPaths := []string{
		"../../config",
		"./config",
		"../config",
		".",
	}
	for _, path := range configPaths {
		viper.AddConfigPath(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			logrus.Errorf("config file not found: %v", err)
		} else {
			logrus.Errorf("config error: %v", err)
		}
		return
	}

	logrus.Infof("Successfully read config file: %s", viper.ConfigFileUsed())

	// 手动从viper获取配置值，避免Unmarshal问题
	ConfigInfo.Server.Addr = viper.GetString("server.addr")
	ConfigInfo.Server.MaxRequestBodySize = viper.GetInt("server.max_request_body_size")

	ConfigInfo.Mysql.Addr = viper.GetString("mysql.addr")
	ConfigInfo.Mysql.Database = viper.GetString("mysql.database")
	ConfigInfo.Mysql.Username = viper.GetString("mysql.username")
	ConfigInfo.Mysql.Password = viper.GetString("mysql.password")
	ConfigInfo.Mysql.Charset = viper.GetString("mysql.charset")

	ConfigInfo.Jwt.Secret = viper.GetString("jwt.secret")
	ConfigInfo.Jwt.Algorithm = viper.GetString("jwt.algorithm")
	ConfigInfo.Jwt.ExpireSec = viper.GetInt64("jwt.expire_sec")

	ConfigInfo.Storage.Backend = viper.GetString("storage.backend")
	ConfigInfo.Storage.Minio.Endpoint = viper.GetString("storage.minio.endpoint")
	ConfigInfo.Storage.Minio.AccessKey = viper.GetString("storage.minio.access_key")
	ConfigInfo.Storage.Minio.SecretKey = viper.GetString("storage.minio.secret_key")
	ConfigInfo.Storage.Minio.Bucket = viper.GetString("storage.minio.bucket")
	ConfigInfo.Storage.Minio.UseSSL = viper.GetBool("storage.minio.use_ssl")
	ConfigInfo.Storage.Local.Dir = viper.GetString("storage.local.dir")
	ConfigInfo.Storage.Local.UrlPrefix = viper.GetString("storage.local.url_prefix")

	ConfigInfo.Cors.AllowOrigins = viper.GetStringSlice("cors.allow_origins")

	logrus.Infof("Config loaded - MySQL: %s:%s@%s/%s",
		ConfigInfo.Mysql.Username, "***", ConfigInfo.Mysql.Addr, ConfigInfo.Mysql.Database)

	if ConfigInfo.Jwt.Secret == "" {
		logrus.Warn("jwt secret is empty, token signing will fail!")
	}
}
