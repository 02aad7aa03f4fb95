// Package session реализует сервис сессии и подписок — единственный
// источник истины о том, кто вошёл в систему и какие курсы он купил.
// Состояние держится в памяти и дублируется в долговременное key-value
// хранилище, поэтому переживает перезапуск процесса.
//
// В процессе существует не более одной активной сессии. Все операции
// синхронны: они либо детерминированно выполняются, либо возвращают
// false без изменения состояния.
package session

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/asmolenkov/course-catalog/internal/catalog"
	"github.com/asmolenkov/course-catalog/internal/lib/sl"
	"github.com/asmolenkov/course-catalog/internal/models"
	"github.com/asmolenkov/course-catalog/internal/storage"
)

// Ключи долговременного хранилища. Подписки хранятся под ключом,
// привязанным к идентификатору владельца, поэтому при выходе из системы
// они остаются на диске и восстанавливаются при повторном входе.
const (
	tokenKey         = "token"
	currentUserKey   = "currentUser"
	subscriptionsKey = "subscriptions_"
)

// TokenMaker выпускает токен сессии для вошедшего пользователя.
type TokenMaker interface {
	GenerateToken(userID, email string) (string, error)
}

// Service хранит текущего пользователя и его подписки.
type Service struct {
	log     *slog.Logger
	storage storage.Storage
	tokens  TokenMaker

	mu            sync.Mutex
	user          *models.User
	subscriptions []models.Subscription
}

// New создает сервис сессии поверх переданного хранилища.
// Состояние из хранилища не читается до вызова Init.
func New(log *slog.Logger, st storage.Storage, tokens TokenMaker) *Service {
	return &Service{
		log:     log,
		storage: st,
		tokens:  tokens,
	}
}

// Init восстанавливает сессию из долговременного хранилища при старте
// процесса. Отсутствующая или повреждённая запись означает отсутствие
// сессии: сервис стартует в разлогиненном состоянии без ошибки.
func (s *Service) Init() {
	const op = "session.Init"

	var user models.User
	found, err := s.storage.Get(currentUserKey, &user)
	if err != nil {
		s.log.Warn("stored session is unreadable, starting logged out",
			slog.String("op", op), sl.Err(err))
		return
	}
	if !found {
		s.log.Info("no stored session found", slog.String("op", op))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = &user
	s.subscriptions = s.loadSubscriptions(user.ID)
	s.log.Info("session restored",
		slog.String("op", op),
		slog.String("user_id", user.ID),
		slog.Int("subscriptions", len(s.subscriptions)))
}

// loadSubscriptions читает список подписок пользователя из хранилища.
// Вызывается под мьютексом. Любая проблема чтения сводится к пустому списку.
func (s *Service) loadSubscriptions(userID string) []models.Subscription {
	const op = "session.loadSubscriptions"

	var subs []models.Subscription
	found, err := s.storage.Get(subscriptionsKey+userID, &subs)
	if err != nil {
		s.log.Warn("stored subscriptions are unreadable",
			slog.String("op", op), sl.Err(err))
		return nil
	}
	if !found {
		return nil
	}
	return subs
}

// Login выполняет вход по почте и паролю из фиксированной коллекции
// пользователей. При совпадении сохраняет маркер сессии и запись
// пользователя в хранилище, загружает его ранее сохранённые подписки
// и возвращает выпущенный токен. При несовпадении состояние не меняется.
func (s *Service) Login(email, password string) (string, bool) {
	const op = "session.Login"

	user, ok := catalog.FindUserByCredentials(email, password)
	if !ok {
		s.log.Info("login rejected", slog.String("op", op))
		return "", false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	token := s.openSession(user)
	s.subscriptions = s.loadSubscriptions(user.ID)
	s.log.Info("login success",
		slog.String("op", op),
		slog.String("user_id", user.ID),
		slog.Int("subscriptions", len(s.subscriptions)))
	return token, true
}

// Signup регистрирует нового пользователя и сразу открывает его сессию
// с пустым списком подписок. Занятая почта отклоняется без изменения
// состояния. Новый пользователь не добавляется в фиксированную коллекцию,
// поэтому после выхода войти с этими данными повторно нельзя.
func (s *Service) Signup(name, email, password string) (string, bool) {
	const op = "session.Signup"

	if _, exists := catalog.FindUserByEmail(email); exists {
		s.log.Info("signup rejected: email already registered", slog.String("op", op))
		return "", false
	}

	user := &models.User{
		ID:       "user-" + uuid.NewString(),
		Name:     name,
		Email:    email,
		Password: password,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	token := s.openSession(user)
	s.subscriptions = nil
	s.log.Info("signup success", slog.String("op", op), slog.String("user_id", user.ID))
	return token, true
}

// openSession устанавливает пользователя текущим и сохраняет маркер
// сессии и запись пользователя в хранилище. Вызывается под мьютексом.
// Сбои записи в хранилище логируются и не прерывают операцию: модель
// отказов считает запись мгновенной и безотказной.
func (s *Service) openSession(user *models.User) string {
	const op = "session.openSession"

	token, err := s.tokens.GenerateToken(user.ID, user.Email)
	if err != nil {
		s.log.Warn("failed to issue session token", slog.String("op", op), sl.Err(err))
	}
	if err := s.storage.Set(tokenKey, token); err != nil {
		s.log.Warn("failed to persist session token", slog.String("op", op), sl.Err(err))
	}
	if err := s.storage.Set(currentUserKey, user); err != nil {
		s.log.Warn("failed to persist current user", slog.String("op", op), sl.Err(err))
	}
	s.user = user
	return token
}

// Logout очищает сессию в памяти и удаляет маркер сессии и запись
// пользователя из хранилища. Подписки, сохранённые под ключом бывшего
// пользователя, остаются на месте для будущего входа.
func (s *Service) Logout() {
	const op = "session.Logout"

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.storage.Remove(tokenKey); err != nil {
		s.log.Warn("failed to remove session token", slog.String("op", op), sl.Err(err))
	}
	if err := s.storage.Remove(currentUserKey); err != nil {
		s.log.Warn("failed to remove current user", slog.String("op", op), sl.Err(err))
	}
	s.user = nil
	s.subscriptions = nil
	s.log.Info("logged out", slog.String("op", op))
}

// Subscribe добавляет запись о покупке курса и сохраняет обновлённый
// список под ключом текущего пользователя. Без вошедшего пользователя
// операция ничего не делает. Повторная покупка того же курса не
// блокируется: каждая покупка добавляет отдельную запись.
func (s *Service) Subscribe(courseID string, pricePaid float64) {
	const op = "session.Subscribe"

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		s.log.Info("subscribe ignored: nobody is logged in", slog.String("op", op))
		return
	}

	sub := models.Subscription{
		ID:           "sub-" + uuid.NewString(),
		UserID:       s.user.ID,
		CourseID:     courseID,
		PricePaid:    pricePaid,
		SubscribedAt: time.Now().UTC(),
	}
	s.subscriptions = append(s.subscriptions, sub)

	if err := s.storage.Set(subscriptionsKey+s.user.ID, s.subscriptions); err != nil {
		s.log.Warn("failed to persist subscriptions", slog.String("op", op), sl.Err(err))
	}
	s.log.Info("subscribed",
		slog.String("op", op),
		slog.String("course_id", courseID),
		slog.Float64("price_paid", pricePaid))
}

// IsSubscribed сообщает, есть ли среди подписок текущей сессии запись
// о покупке указанного курса. Чистое чтение без побочных эффектов.
func (s *Service) IsSubscribed(courseID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.subscriptions {
		if s.subscriptions[i].CourseID == courseID {
			return true
		}
	}
	return false
}

// CurrentUser возвращает копию текущего пользователя или nil,
// если в систему никто не вошёл.
func (s *Service) CurrentUser() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Snapshot возвращает неизменяемый снимок состояния сессии.
// Слой представления сравнивает снимки и перерисовывается сам.
func (s *Service) Snapshot() models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := models.Session{}
	if s.user != nil {
		u := *s.user
		snap.User = &u
	}
	if len(s.subscriptions) > 0 {
		snap.Subscriptions = make([]models.Subscription, len(s.subscriptions))
		copy(snap.Subscriptions, s.subscriptions)
	}
	return snap
}
