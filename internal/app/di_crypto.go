package app

import (
	"context"
	"fmt"

	cryptoDomain "github.com/allisson/fieldcrypt/internal/crypto/domain"
	cryptoMySQL "github.com/allisson/fieldcrypt/internal/crypto/repository/mysql"
	cryptoPostgreSQL "github.com/allisson/fieldcrypt/internal/crypto/repository/postgresql"
	cryptoService "github.com/allisson/fieldcrypt/internal/crypto/service"
	cryptoUseCase "github.com/allisson/fieldcrypt/internal/crypto/usecase"
	"github.com/allisson/fieldcrypt/internal/database"
)

// KeyMaterial returns the raw keys loaded from the environment variables named by
// KeyEnvPrefix.
func (c *Container) KeyMaterial() (*cryptoDomain.KeyMaterial, error) {
	return lazy(c, &c.keyMaterialInit, "keyMaterial", &c.keyMaterial, c.initKeyMaterial)
}

// KeyRecordRepository returns the key record repository for the configured driver.
func (c *Container) KeyRecordRepository() (cryptoUseCase.KeyRecordRepository, error) {
	return lazy(
		c,
		&c.keyRecordRepositoryInit,
		"keyRecordRepository",
		&c.keyRecordRepository,
		c.initKeyRecordRepository,
	)
}

// EnvelopeColumnRepository returns the envelope column repository for the configured driver.
func (c *Container) EnvelopeColumnRepository() (cryptoUseCase.EnvelopeColumnRepository, error) {
	return lazy(
		c,
		&c.envelopeColumnRepositoryInit,
		"envelopeColumnRepository",
		&c.envelopeColumnRepository,
		c.initEnvelopeColumnRepository,
	)
}

// KeyRegistryUseCase returns the key registry use case, instrumented with metrics.
func (c *Container) KeyRegistryUseCase() (cryptoUseCase.KeyRegistryUseCase, error) {
	return lazy(c, &c.keyRegistryUseCaseInit, "keyRegistryUseCase", &c.keyRegistryUseCase, c.initKeyRegistryUseCase)
}

// KeySet returns the bootstrapped key set. The first call registers unseen keys in the
// durable store; configuration errors surface here and are fatal for the process.
func (c *Container) KeySet() (*cryptoService.KeySet, error) {
	return lazy(c, &c.keySetInit, "keySet", &c.keySet, c.initKeySet)
}

// Cipher returns the envelope cipher bound to the bootstrapped key set.
func (c *Container) Cipher() (cryptoService.Cipher, error) {
	return lazy(c, &c.cipherInit, "cipher", &c.cipher, c.initCipher)
}

// RewrapUseCase returns the column rewrap use case.
func (c *Container) RewrapUseCase() (cryptoUseCase.RewrapUseCase, error) {
	return lazy(c, &c.rewrapUseCaseInit, "rewrapUseCase", &c.rewrapUseCase, c.initRewrapUseCase)
}

func (c *Container) initKeyMaterial() (*cryptoDomain.KeyMaterial, error) {
	material, err := cryptoDomain.LoadKeyMaterialFromEnv(c.config.KeyEnvPrefix)
	if err != nil {
		return nil, fmt.Errorf("failed to load key material: %w", err)
	}
	return material, nil
}

func (c *Container) initKeyRecordRepository() (cryptoUseCase.KeyRecordRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for key record repository: %w", err)
	}

	switch c.config.DBDriver {
	case database.DriverMySQL:
		return cryptoMySQL.NewMySQLKeyRecordRepository(db), nil
	case database.DriverPostgres:
		return cryptoPostgreSQL.NewPostgreSQLKeyRecordRepository(db), nil
	default:
		return nil, database.ValidateDriver(c.config.DBDriver)
	}
}

func (c *Container) initEnvelopeColumnRepository() (cryptoUseCase.EnvelopeColumnRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for envelope column repository: %w", err)
	}

	switch c.config.DBDriver {
	case database.DriverMySQL:
		return cryptoMySQL.NewMySQLEnvelopeColumnRepository(db), nil
	case database.DriverPostgres:
		return cryptoPostgreSQL.NewPostgreSQLEnvelopeColumnRepository(db), nil
	default:
		return nil, database.ValidateDriver(c.config.DBDriver)
	}
}

func (c *Container) initKeyRegistryUseCase() (cryptoUseCase.KeyRegistryUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for key registry use case: %w", err)
	}

	repo, err := c.KeyRecordRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get key record repository for key registry use case: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for key registry use case: %w", err)
	}

	useCase := cryptoUseCase.NewKeyRegistryUseCase(txManager, repo, c.Logger())
	return cryptoUseCase.NewKeyRegistryUseCaseWithMetrics(useCase, businessMetrics), nil
}

func (c *Container) initKeySet() (*cryptoService.KeySet, error) {
	material, err := c.KeyMaterial()
	if err != nil {
		return nil, err
	}

	registry, err := c.KeyRegistryUseCase()
	if err != nil {
		return nil, err
	}

	keySet, err := registry.Bootstrap(context.Background(), material)
	if err != nil {
		return nil, fmt.Errorf("failed to bootstrap key registry: %w", err)
	}
	return keySet, nil
}

func (c *Container) initCipher() (cryptoService.Cipher, error) {
	keySet, err := c.KeySet()
	if err != nil {
		return nil, err
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for cipher: %w", err)
	}

	return cryptoService.NewCipherWithMetrics(cryptoService.NewEnvelopeCipher(keySet), businessMetrics), nil
}

func (c *Container) initRewrapUseCase() (cryptoUseCase.RewrapUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for rewrap use case: %w", err)
	}

	repo, err := c.EnvelopeColumnRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get envelope column repository for rewrap use case: %w", err)
	}

	cipher, err := c.Cipher()
	if err != nil {
		return nil, err
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for rewrap use case: %w", err)
	}

	useCase := cryptoUseCase.NewRewrapUseCase(
		txManager,
		repo,
		cipher,
		cryptoUseCase.RewrapConfig{
			BatchSize:     c.config.RewrapBatchSize,
			RowsPerSecond: c.config.RewrapRowsPerSecond,
		},
		c.Logger(),
	)
	return cryptoUseCase.NewRewrapUseCaseWithMetrics(useCase, businessMetrics), nil
}
