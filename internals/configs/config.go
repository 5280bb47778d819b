package configs

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

var (
	JWTSecret          string
	JWTRefreshSecret   string
	AdminEmail         string
	GoogleClientID     string
	GoogleClientSecret string
	FrontendBaseURL    string
	BackendBaseURL     string
	AllowedOrigins     []string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
		} else {
			log.Println("✅ .env file berhasil dimuat!")
		}
	} else {
		log.Println("🚀 Running in Railway, menggunakan ENV dari sistem")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	JWTRefreshSecret = GetEnv("JWT_REFRESH_SECRET")
	AdminEmail = strings.TrimSpace(GetEnv("ADMIN_EMAIL"))
	GoogleClientID = GetEnv("GOOGLE_CLIENT_ID")
	GoogleClientSecret = GetEnv("GOOGLE_CLIENT_SECRET")
	FrontendBaseURL = GetEnv("FRONTEND_URL", "http://localhost:5173")
	BackendBaseURL = GetEnv("BACKEND_URL", "http://localhost:8000")
	AllowedOrigins = splitOrigins(GetEnv("ALLOWED_ORIGINS", GetEnv("CORS_ORIGIN", FrontendBaseURL)))

	if JWTSecret == "" {
		log.Fatal("❌ JWT_SECRET belum diset!")
	}
	if JWTRefreshSecret == "" {
		log.Fatal("❌ JWT_REFRESH_SECRET belum diset!")
	}

	// Satu-satunya email yang boleh memegang role admin. Tanpa fallback:
	// kalau kosong aplikasi tidak boleh jalan.
	if AdminEmail == "" {
		log.Fatal("❌ ADMIN_EMAIL belum diset! Tidak ada fallback untuk akun admin.")
	}

	if GoogleClientID == "" {
		log.Println("⚠️ GOOGLE_CLIENT_ID belum diset, login Google dinonaktifkan")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

// splitOrigins menerima satu origin atau daftar dipisah koma.
func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}
