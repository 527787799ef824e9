package config_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/acdih/fabric-config/config"
)

var _ = Describe("NewCredentials", func() {
	var cfg *config.Settings

	BeforeEach(func() {
		cfg = &config.Settings{
			FirebaseProjectID:   "acdih-test",
			FirebasePrivateKey:  testPrivateKey,
			FirebaseClientEmail: "fabric@acdih-test.iam.gserviceaccount.com",
		}
	})

	It("should copy the identity fields from settings", func() {
		creds, err := config.NewCredentials(cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(creds.ProjectID).To(Equal("acdih-test"))
		Expect(creds.PrivateKey).To(Equal(testPrivateKey))
		Expect(creds.ClientEmail).To(Equal("fabric@acdih-test.iam.gserviceaccount.com"))
	})

	It("should fail when the project id is empty", func() {
		cfg.FirebaseProjectID = ""
		creds, err := config.NewCredentials(cfg)
		Expect(creds).To(BeNil())
		Expect(errors.Is(err, config.ErrIncompleteCredentials)).To(BeTrue())
	})

	It("should fail when the private key is empty", func() {
		cfg.FirebasePrivateKey = ""
		_, err := config.NewCredentials(cfg)
		Expect(errors.Is(err, config.ErrIncompleteCredentials)).To(BeTrue())
	})

	It("should fail when the client email is empty", func() {
		cfg.FirebaseClientEmail = ""
		_, err := config.NewCredentials(cfg)
		Expect(errors.Is(err, config.ErrIncompleteCredentials)).To(BeTrue())
	})

	It("should not fail on key material without a PEM header", func() {
		cfg.FirebasePrivateKey = "raw-key-material"
		creds, err := config.NewCredentials(cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(creds.PrivateKey).To(Equal("raw-key-material"))
	})
})

var _ = Describe("RedisPool", func() {
	It("should size the pool at twice the worker count", func() {
		cfg := &config.Settings{MaxWorkers: 4, RedisURL: "redis://localhost:6379/0"}
		pool := cfg.RedisPool()
		Expect(pool.MaxConnections).To(Equal(8))
		Expect(pool.URL).To(Equal("redis://localhost:6379/0"))
		Expect(pool.DecodeResponses).To(BeTrue())
	})

	It("should track the worker count", func() {
		cfg := &config.Settings{MaxWorkers: 12}
		Expect(cfg.RedisPool().MaxConnections).To(Equal(24))
	})
})
