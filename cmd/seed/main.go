// Seed fills the store with demo users, catalog rows and products so the
// storefront has something to render on a fresh database.
package main

import (
    "fmt"
    "os"

    "github.com/google/uuid"
    "golang.org/x/crypto/bcrypt"

    "github.com/d60-Lab/desi-delights/internal/database"
    "github.com/d60-Lab/desi-delights/internal/model"
)

func main() {
    driver := os.Getenv("DATABASE_DRIVER")
    if driver == "" {
        driver = "mysql"
    }
    dsn := os.Getenv("DATABASE_URL")
    if dsn == "" {
        dsn = "root:root@tcp(localhost:3306)/desidelights?parseTime=true"
    }

    db, err := database.Open(driver, dsn)
    if err != nil {
        fmt.Fprintln(os.Stderr, "open:", err)
        os.Exit(1)
    }
    if err := database.Migrate(db); err != nil {
        fmt.Fprintln(os.Stderr, "migrate:", err)
        os.Exit(1)
    }

    hash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
    admin := model.User{Name: "Admin", Email: "admin@desidelights.test", Password: string(hash), Role: model.RoleAdmin}
    if err := db.Create(&admin).Error; err != nil {
        fmt.Fprintln(os.Stderr, "seed admin:", err)
    }

    brands := []model.Brand{{Name: "Desi Delights"}, {Name: "Gharwali"}}
    categories := []model.Category{{Name: "Sweets"}, {Name: "Snacks"}, {Name: "Pickles"}}
    _ = db.Create(&brands).Error
    _ = db.Create(&categories).Error

    seasons := model.Seasons
    products := make([]model.Product, 0, 24)
    for i := 0; i < 24; i++ {
        products = append(products, model.Product{
            Name:        fmt.Sprintf("Demo Item %s", uuid.NewString()[:8]),
            BrandID:     brands[i%len(brands)].ID,
            CategoryID:  categories[i%len(categories)].ID,
            Description: "seeded demo product",
            Price:       float64(50 + i*10),
            Stock:       100,
            TotalSales:  int64(i * 3),
            BestSelling: i%4 == 0,
            Season:      seasons[i%len(seasons)],
        })
    }
    if err := db.Create(&products).Error; err != nil {
        fmt.Fprintln(os.Stderr, "seed products:", err)
        os.Exit(1)
    }

    fmt.Printf("seeded %d products, %d brands, %d categories\n", len(products), len(brands), len(categories))
}
