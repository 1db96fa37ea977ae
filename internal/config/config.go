package config

import (
    "strings"
    "time"

    "github.com/spf13/viper"
)

// Config 应用配置，viper 从文件与环境变量加载
type Config struct {
    Server struct {
        Port string `mapstructure:"port"`
        Mode string `mapstructure:"mode"` // debug / release
    } `mapstructure:"server"`
    Database struct {
        Driver string `mapstructure:"driver"` // mysql / postgres / sqlite
        DSN    string `mapstructure:"dsn"`
    } `mapstructure:"database"`
    Redis struct {
        Addr     string `mapstructure:"addr"` // 为空则使用本地内存缓存
        Password string `mapstructure:"password"`
        DB       int    `mapstructure:"db"`
    } `mapstructure:"redis"`
    Auth struct {
        JWTSecret string        `mapstructure:"jwt_secret"`
        TokenTTL  time.Duration `mapstructure:"token_ttl"`
    } `mapstructure:"auth"`
    Cache struct {
        ProductTTL time.Duration `mapstructure:"product_ttl"`
    } `mapstructure:"cache"`
    Sentry struct {
        DSN string `mapstructure:"dsn"`
    } `mapstructure:"sentry"`
    Otel struct {
        Endpoint string `mapstructure:"endpoint"`
    } `mapstructure:"otel"`
    Alerts struct {
        LowStockThreshold int `mapstructure:"low_stock_threshold"`
    } `mapstructure:"alerts"`
}

// Load 读取配置：默认值 < 配置文件(CONFIG_FILE) < 环境变量
func Load() (*Config, error) {
    v := viper.New()

    v.SetDefault("server.port", ":8080")
    v.SetDefault("server.mode", "release")
    v.SetDefault("database.driver", "mysql")
    v.SetDefault("database.dsn", "root:root@tcp(localhost:3306)/desidelights?parseTime=true")
    v.SetDefault("redis.addr", "")
    v.SetDefault("redis.password", "")
    v.SetDefault("redis.db", 0)
    v.SetDefault("auth.jwt_secret", "change-me")
    v.SetDefault("auth.token_ttl", 24*time.Hour)
    v.SetDefault("cache.product_ttl", 5*time.Minute)
    v.SetDefault("sentry.dsn", "")
    v.SetDefault("otel.endpoint", "")
    v.SetDefault("alerts.low_stock_threshold", 5)

    v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
    v.AutomaticEnv()

    if file := v.GetString("config_file"); file != "" {
        v.SetConfigFile(file)
        if err := v.ReadInConfig(); err != nil {
            return nil, err
        }
    }

    var cfg Config
    if err := v.Unmarshal(&cfg); err != nil {
        return nil, err
    }
    return &cfg, nil
}
