package database

import (
    "fmt"
    "time"

    "gorm.io/driver/mysql"
    "gorm.io/driver/postgres"
    "gorm.io/driver/sqlite"
    "gorm.io/gorm"

    "github.com/d60-Lab/desi-delights/internal/model"
)

// Open 按配置驱动打开数据库连接并设置连接池
func Open(driver, dsn string) (*gorm.DB, error) {
    var dialector gorm.Dialector
    switch driver {
    case "mysql":
        dialector = mysql.Open(dsn)
    case "postgres":
        dialector = postgres.Open(dsn)
    case "sqlite":
        dialector = sqlite.Open(dsn)
    default:
        return nil, fmt.Errorf("unsupported database driver: %s", driver)
    }

    // TranslateError 让唯一索引冲突以 gorm.ErrDuplicatedKey 暴露
    db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
    if err != nil {
        return nil, fmt.Errorf("open %s: %w", driver, err)
    }

    sqlDB, err := db.DB()
    if err != nil {
        return nil, err
    }
    sqlDB.SetMaxOpenConns(50)
    sqlDB.SetMaxIdleConns(25)
    sqlDB.SetConnMaxLifetime(5 * time.Minute)

    return db, nil
}

// Migrate 建表/更新表结构
func Migrate(db *gorm.DB) error {
    if err := db.AutoMigrate(
        &model.User{},
        &model.Brand{},
        &model.Category{},
        &model.Product{},
        &model.Order{},
        &model.OrderItem{},
        &model.Review{},
        &model.Attendance{},
        &model.LeaveRequest{},
        &model.Holiday{},
        &model.Page{},
        &model.Inquiry{},
    ); err != nil {
        return fmt.Errorf("auto migrate: %w", err)
    }
    return nil
}

// Close 关闭底层连接池
func Close(db *gorm.DB) error {
    sqlDB, err := db.DB()
    if err != nil {
        return err
    }
    return sqlDB.Close()
}
