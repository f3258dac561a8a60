package config_test

import (
	"os"

	"blogr/internal/config"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("App", func() {
	setenv := func(key, value string) {
		Expect(os.Setenv(key, value)).To(Succeed())
		DeferCleanup(os.Unsetenv, key)
	}

	BeforeEach(func() {
		for _, key := range []string{"API_PORT", "DB_CONNECTION_URL", "JWT_SECRET", "CORS_ORIGIN", "UPLOADS_DIR", "BCRYPT_COST"} {
			Expect(os.Unsetenv(key)).To(Succeed())
		}
	})

	When("the required variables are set", func() {
		BeforeEach(func() {
			setenv("DB_CONNECTION_URL", "postgres://localhost:5432/blogr")
			setenv("JWT_SECRET", "test-secret")
		})

		It("applies the documented defaults", func() {
			cfg, err := config.NewApp()
			Expect(err).NotTo(HaveOccurred())

			Expect(cfg.Port).To(Equal("4000"))
			Expect(cfg.CORSOrigin).To(Equal("http://localhost:3000"))
			Expect(cfg.UploadsDir).To(Equal("uploads"))
			Expect(cfg.BcryptCost).To(Equal(10))
			Expect(cfg.DBConnectionURL).To(Equal("postgres://localhost:5432/blogr"))
			Expect(cfg.JWTSecret).To(Equal("test-secret"))
		})

		It("lets the environment override defaults", func() {
			setenv("API_PORT", "8080")
			setenv("BCRYPT_COST", "12")

			cfg, err := config.NewApp()
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Port).To(Equal("8080"))
			Expect(cfg.BcryptCost).To(Equal(12))
		})
	})

	When("a required variable is missing", func() {
		BeforeEach(func() {
			setenv("DB_CONNECTION_URL", "postgres://localhost:5432/blogr")
		})

		It("fails", func() {
			_, err := config.NewApp()
			Expect(err).To(HaveOccurred())
		})
	})
})
