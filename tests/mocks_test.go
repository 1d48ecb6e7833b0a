package tests

import (
	"github.com/stretchr/testify/mock"
	"restaurante-api/models"
	"restaurante-api/services"
)

// Mocks for the repository and service interfaces, shared by the suites in
// this package.

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByNameOrEmail(nameOrEmail string) (*models.User, error) {
	args := m.Called(nameOrEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) NameOrEmailTaken(name, email string) (bool, error) {
	args := m.Called(name, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) Save(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) FindAll() ([]models.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

type MockFoodRepository struct {
	mock.Mock
}

func (m *MockFoodRepository) FindAll() ([]models.Food, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Food), args.Error(1)
}

func (m *MockFoodRepository) FindByID(id uint) (*models.Food, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Food), args.Error(1)
}

func (m *MockFoodRepository) NameTaken(name string) (bool, error) {
	args := m.Called(name)
	return args.Bool(0), args.Error(1)
}

func (m *MockFoodRepository) Create(food *models.Food) error {
	args := m.Called(food)
	return args.Error(0)
}

func (m *MockFoodRepository) Save(food *models.Food) error {
	args := m.Called(food)
	return args.Error(0)
}

func (m *MockFoodRepository) Delete(food *models.Food) error {
	args := m.Called(food)
	return args.Error(0)
}

type MockWeekdayRepository struct {
	mock.Mock
}

func (m *MockWeekdayRepository) FindAll() ([]models.Weekday, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Weekday), args.Error(1)
}

func (m *MockWeekdayRepository) FindByDay(day string) (*models.Weekday, error) {
	args := m.Called(day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Weekday), args.Error(1)
}

func (m *MockWeekdayRepository) DayExists(day string) (bool, error) {
	args := m.Called(day)
	return args.Bool(0), args.Error(1)
}

func (m *MockWeekdayRepository) Create(weekday *models.Weekday) error {
	args := m.Called(weekday)
	return args.Error(0)
}

func (m *MockWeekdayRepository) Save(weekday *models.Weekday) error {
	args := m.Called(weekday)
	return args.Error(0)
}

type MockMenuRepository struct {
	mock.Mock
}

func (m *MockMenuRepository) FindByID(menuID uint) (*models.Menu, error) {
	args := m.Called(menuID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Menu), args.Error(1)
}

func (m *MockMenuRepository) FindByWeekday(weekdayID uint) ([]models.Menu, error) {
	args := m.Called(weekdayID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Menu), args.Error(1)
}

func (m *MockMenuRepository) FindByWeekdayAndPeriod(weekdayID uint, period string) (*models.Menu, error) {
	args := m.Called(weekdayID, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Menu), args.Error(1)
}

func (m *MockMenuRepository) PeriodExists(weekdayID uint, period string) (bool, error) {
	args := m.Called(weekdayID, period)
	return args.Bool(0), args.Error(1)
}

func (m *MockMenuRepository) Create(menu *models.Menu) error {
	args := m.Called(menu)
	return args.Error(0)
}

func (m *MockMenuRepository) ReplaceItems(menuID uint, items []models.MenuItem, resetCapacity int) error {
	args := m.Called(menuID, items, resetCapacity)
	return args.Error(0)
}

func (m *MockMenuRepository) ApplyOrder(menuID uint, numberOfPeople int, items []models.OrderedItem) error {
	args := m.Called(menuID, numberOfPeople, items)
	return args.Error(0)
}

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(order *models.Order) error {
	args := m.Called(order)
	return args.Error(0)
}

func (m *MockOrderRepository) FindByUser(userID uint) ([]models.Order, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByID(id uint) (*models.Order, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByIDWithMeals(id uint) (*models.Order, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderRepository) Save(order *models.Order) error {
	args := m.Called(order)
	return args.Error(0)
}

func (m *MockOrderRepository) Delete(order *models.Order) error {
	args := m.Called(order)
	return args.Error(0)
}

type MockRatingRepository struct {
	mock.Mock
}

func (m *MockRatingRepository) Create(rating *models.Rating) error {
	args := m.Called(rating)
	return args.Error(0)
}

func (m *MockRatingRepository) ExistsForOrder(orderID uint) (bool, error) {
	args := m.Called(orderID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRatingRepository) FindAll() ([]models.Rating, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Rating), args.Error(1)
}

func (m *MockRatingRepository) FindByUser(userID uint) ([]models.Rating, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Rating), args.Error(1)
}

func (m *MockRatingRepository) FindByID(id uint) (*models.Rating, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Rating), args.Error(1)
}

func (m *MockRatingRepository) FindByIDAndUser(id, userID uint) (*models.Rating, error) {
	args := m.Called(id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Rating), args.Error(1)
}

func (m *MockRatingRepository) Delete(rating *models.Rating) error {
	args := m.Called(rating)
	return args.Error(0)
}

type MockEventService struct {
	mock.Mock
}

func (m *MockEventService) PublishOrderEvent(event services.OrderEvent) error {
	args := m.Called(event)
	return args.Error(0)
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(req services.RegisterRequest) (*models.User, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) Login(nameOrEmail, password string) (string, *models.User, error) {
	args := m.Called(nameOrEmail, password)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*models.User), args.Error(2)
}

func (m *MockUserService) ParseToken(tokenString string) (*services.Claims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.Claims), args.Error(1)
}

func (m *MockUserService) Update(userID uint, patch models.UserPatch) (*models.User, error) {
	args := m.Called(userID, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) List() ([]models.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}
