package detailrepo_test

import (
	"context"
	"testing"
	"time"

	"retail/internal/adapters/out/postgres"
	"retail/internal/adapters/out/postgres/detailrepo"
	"retail/internal/core/domain/model/kernel"
	"retail/internal/core/domain/model/order"
	"retail/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DetailRepositoryIntegrationTestSuite provides integration tests for
// DetailRepository using PostgreSQL containers.
type DetailRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *tcpostgres.PostgresContainer
	db         *gorm.DB
	repository *detailrepo.GormDetailRepository
}

func (suite *DetailRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres.RunMigrations(db))
}

func (suite *DetailRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error)

	suite.repository = detailrepo.NewGormDetailRepository(suite.db)
}

func (suite *DetailRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *DetailRepositoryIntegrationTestSuite) TestAddCollection_PersistsDetail() {
	ctx := context.Background()

	suite.seedOrder(1, int(order.Collection))
	detail := suite.newCollectionDetail()

	suite.Require().NoError(suite.repository.AddCollection(ctx, 1, detail))

	var dto detailrepo.CollectionDetailDTO
	suite.Require().NoError(suite.db.Where("order_id = ?", 1).First(&dto).Error)
	suite.Equal("June", dto.FirstName)
	suite.Equal("Bell", dto.LastName)
}

func (suite *DetailRepositoryIntegrationTestSuite) TestAddCollection_SecondDetail_ReturnsAlreadyExistsError() {
	ctx := context.Background()

	suite.seedOrder(1, int(order.Collection))
	detail := suite.newCollectionDetail()

	suite.Require().NoError(suite.repository.AddCollection(ctx, 1, detail))

	err := suite.repository.AddCollection(ctx, 1, detail)
	suite.Require().Error(err)

	var alreadyExistsErr *errs.ObjectAlreadyExistsError
	suite.Require().ErrorAs(err, &alreadyExistsErr)
}

func (suite *DetailRepositoryIntegrationTestSuite) TestAddDelivery_PersistsDetail() {
	ctx := context.Background()

	suite.seedOrder(2, int(order.Delivery))
	detail := suite.newDeliveryDetail()

	suite.Require().NoError(suite.repository.AddDelivery(ctx, 2, detail))

	var dto detailrepo.DeliveryDetailDTO
	suite.Require().NoError(suite.db.Where("order_id = ?", 2).First(&dto).Error)
	suite.Equal("14", dto.House)
	suite.Equal("High Street", dto.Street)
	suite.Equal("Leeds", dto.City)
}

func (suite *DetailRepositoryIntegrationTestSuite) TestAddDelivery_SecondDetail_ReturnsAlreadyExistsError() {
	ctx := context.Background()

	suite.seedOrder(2, int(order.Delivery))
	detail := suite.newDeliveryDetail()

	suite.Require().NoError(suite.repository.AddDelivery(ctx, 2, detail))

	err := suite.repository.AddDelivery(ctx, 2, detail)
	suite.Require().Error(err)

	var alreadyExistsErr *errs.ObjectAlreadyExistsError
	suite.Require().ErrorAs(err, &alreadyExistsErr)
}

func (suite *DetailRepositoryIntegrationTestSuite) TestAddCollection_MissingOrder_ReturnsError() {
	ctx := context.Background()

	err := suite.repository.AddCollection(ctx, 999, suite.newCollectionDetail())
	suite.Require().Error(err)
}

func (suite *DetailRepositoryIntegrationTestSuite) newCollectionDetail() order.CollectionDetail {
	date, err := kernel.ParseDate("9-sep-23")
	suite.Require().NoError(err)

	detail, err := order.NewCollectionDetail("June", "Bell", date)
	suite.Require().NoError(err)
	return detail
}

func (suite *DetailRepositoryIntegrationTestSuite) newDeliveryDetail() order.DeliveryDetail {
	date, err := kernel.ParseDate("12-oct-23")
	suite.Require().NoError(err)

	detail, err := order.NewDeliveryDetail("June", "Bell", "14", "High Street", "Leeds", date)
	suite.Require().NoError(err)
	return detail
}

func (suite *DetailRepositoryIntegrationTestSuite) seedOrder(id int64, orderType int) {
	suite.Require().NoError(suite.db.Exec(
		"INSERT INTO orders (id, reference, order_type, completed, placed_at) "+
			"VALUES (?, gen_random_uuid(), ?, false, '2023-09-01')", id, orderType).Error)
}

func TestDetailRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(DetailRepositoryIntegrationTestSuite))
}
