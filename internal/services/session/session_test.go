package session

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asmolenkov/course-catalog/internal/models"
)

// fakeStorage — key-value хранилище в памяти для тестов сервиса.
type fakeStorage struct {
	data map[string]json.RawMessage
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{data: map[string]json.RawMessage{}}
}

func (f *fakeStorage) Get(key string, result any) (bool, error) {
	raw, ok := f.data[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, result); err != nil {
		return false, err
	}
	return true, nil
}

func (f *fakeStorage) Set(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.data[key] = raw
	return nil
}

func (f *fakeStorage) Remove(key string) error {
	delete(f.data, key)
	return nil
}

// stubTokenMaker выпускает предсказуемый токен.
type stubTokenMaker struct {
	fail bool
}

func (m *stubTokenMaker) GenerateToken(userID, _ string) (string, error) {
	if m.fail {
		return "", errors.New("maker is broken")
	}
	return "token-for-" + userID, nil
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func newService(st *fakeStorage) *Service {
	return New(newNoopLogger(), st, &stubTokenMaker{})
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		wantOK   bool
	}{
		{"демо-пользователь", "demo@example.com", "demo123", true},
		{"второй зарегистрированный пользователь", "jane@example.com", "password456", true},
		{"неверный пароль", "demo@example.com", "wrong", false},
		{"неизвестная почта", "ghost@example.com", "demo123", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := newFakeStorage()
			svc := newService(st)

			token, ok := svc.Login(tt.email, tt.password)
			assert.Equal(t, tt.wantOK, ok)

			if tt.wantOK {
				assert.NotEmpty(t, token)
				user := svc.CurrentUser()
				require.NotNil(t, user)
				assert.Equal(t, tt.email, user.Email)
				// маркер сессии и запись пользователя сохранены
				assert.Contains(t, st.data, "token")
				assert.Contains(t, st.data, "currentUser")
			} else {
				assert.Empty(t, token)
				assert.Nil(t, svc.CurrentUser())
				assert.NotContains(t, st.data, "token")
				assert.NotContains(t, st.data, "currentUser")
			}
		})
	}
}

func TestLogin_DoesNotDisturbExistingSession(t *testing.T) {
	svc := newService(newFakeStorage())

	_, ok := svc.Login("demo@example.com", "demo123")
	require.True(t, ok)

	_, ok = svc.Login("demo@example.com", "wrong")
	assert.False(t, ok)

	user := svc.CurrentUser()
	require.NotNil(t, user)
	assert.Equal(t, "demo@example.com", user.Email)
}

func TestSignup(t *testing.T) {
	t.Run("новая почта создает пользователя с пустыми подписками", func(t *testing.T) {
		st := newFakeStorage()
		svc := newService(st)

		token, ok := svc.Signup("Alice", "alice@example.com", "secret1")
		require.True(t, ok)
		assert.NotEmpty(t, token)

		snap := svc.Snapshot()
		require.NotNil(t, snap.User)
		assert.Equal(t, "alice@example.com", snap.User.Email)
		assert.Equal(t, "Alice", snap.User.Name)
		assert.Empty(t, snap.Subscriptions)
		assert.Contains(t, st.data, "currentUser")
	})

	t.Run("занятая почта отклоняется без изменения состояния", func(t *testing.T) {
		st := newFakeStorage()
		svc := newService(st)

		token, ok := svc.Signup("Imposter", "demo@example.com", "whatever")
		assert.False(t, ok)
		assert.Empty(t, token)
		assert.Nil(t, svc.CurrentUser())
		assert.Empty(t, st.data)
	})
}

// Зарегистрированный через Signup пользователь не попадает в фиксированную
// коллекцию, поэтому после выхода вход с его данными невозможен.
// Тест фиксирует текущее поведение.
func TestSignup_CannotLoginAgainAfterLogout(t *testing.T) {
	svc := newService(newFakeStorage())

	_, ok := svc.Signup("Alice", "alice@example.com", "secret1")
	require.True(t, ok)

	svc.Logout()

	_, ok = svc.Login("alice@example.com", "secret1")
	assert.False(t, ok)
}

func TestSubscribe(t *testing.T) {
	st := newFakeStorage()
	svc := newService(st)

	_, ok := svc.Login("demo@example.com", "demo123")
	require.True(t, ok)

	svc.Subscribe("course-3", 0)

	assert.True(t, svc.IsSubscribed("course-3"))
	snap := svc.Snapshot()
	require.Len(t, snap.Subscriptions, 1)
	sub := snap.Subscriptions[0]
	assert.Equal(t, "user-3", sub.UserID)
	assert.Equal(t, "course-3", sub.CourseID)
	assert.Zero(t, sub.PricePaid)
	assert.False(t, sub.SubscribedAt.IsZero())
	assert.Contains(t, st.data, "subscriptions_user-3")
}

// Повторная покупка того же курса не блокируется: каждая добавляет запись.
// Тест фиксирует текущее поведение.
func TestSubscribe_DuplicateAppends(t *testing.T) {
	svc := newService(newFakeStorage())

	_, ok := svc.Login("demo@example.com", "demo123")
	require.True(t, ok)

	svc.Subscribe("course-1", 99.99)
	svc.Subscribe("course-1", 49.995)

	snap := svc.Snapshot()
	assert.Len(t, snap.Subscriptions, 2)
	assert.True(t, svc.IsSubscribed("course-1"))
}

func TestSubscribe_WithoutUserIsNoop(t *testing.T) {
	st := newFakeStorage()
	svc := newService(st)

	svc.Subscribe("course-1", 99.99)

	assert.False(t, svc.IsSubscribed("course-1"))
	assert.Empty(t, st.data)
}

func TestIsSubscribed_FalseAfterLogout(t *testing.T) {
	svc := newService(newFakeStorage())

	_, ok := svc.Login("demo@example.com", "demo123")
	require.True(t, ok)
	svc.Subscribe("course-2", 79.99)
	require.True(t, svc.IsSubscribed("course-2"))

	svc.Logout()

	assert.False(t, svc.IsSubscribed("course-2"))
	assert.Nil(t, svc.CurrentUser())
	assert.Empty(t, svc.Snapshot().Subscriptions)
}

// Сценарий из жизни демо-пользователя: вход, покупка, выход,
// повторный вход восстанавливает подписки из хранилища.
func TestScenario_DemoUserRoundTrip(t *testing.T) {
	st := newFakeStorage()
	svc := newService(st)

	_, ok := svc.Login("demo@example.com", "demo123")
	require.True(t, ok)
	user := svc.CurrentUser()
	require.NotNil(t, user)
	assert.Equal(t, "Demo User", user.Name)
	assert.Empty(t, svc.Snapshot().Subscriptions)

	svc.Subscribe("course-3", 0)
	assert.True(t, svc.IsSubscribed("course-3"))
	assert.Len(t, svc.Snapshot().Subscriptions, 1)

	svc.Logout()
	assert.Nil(t, svc.CurrentUser())
	assert.Empty(t, svc.Snapshot().Subscriptions)
	// подписки бывшего пользователя остаются в хранилище
	assert.Contains(t, st.data, "subscriptions_user-3")

	_, ok = svc.Login("demo@example.com", "demo123")
	require.True(t, ok)
	assert.Len(t, svc.Snapshot().Subscriptions, 1)
	assert.True(t, svc.IsSubscribed("course-3"))
}

func TestInit_RestoresSession(t *testing.T) {
	st := newFakeStorage()

	first := newService(st)
	_, ok := first.Login("john@example.com", "password123")
	require.True(t, ok)
	first.Subscribe("course-4", 89.99)

	// новый процесс поверх того же хранилища
	second := newService(st)
	second.Init()

	user := second.CurrentUser()
	require.NotNil(t, user)
	assert.Equal(t, "john@example.com", user.Email)
	assert.True(t, second.IsSubscribed("course-4"))
}

func TestInit_EmptyStorage(t *testing.T) {
	svc := newService(newFakeStorage())
	svc.Init()

	assert.Nil(t, svc.CurrentUser())
	assert.Empty(t, svc.Snapshot().Subscriptions)
}

func TestInit_MalformedUserRecord(t *testing.T) {
	st := newFakeStorage()
	st.data["currentUser"] = json.RawMessage(`{broken`)

	svc := newService(st)
	svc.Init()

	assert.Nil(t, svc.CurrentUser())
}

func TestInit_MalformedSubscriptions(t *testing.T) {
	st := newFakeStorage()
	raw, err := json.Marshal(models.User{ID: "user-1", Email: "john@example.com"})
	require.NoError(t, err)
	st.data["currentUser"] = raw
	st.data["subscriptions_user-1"] = json.RawMessage(`"oops"`)

	svc := newService(st)
	svc.Init()

	// пользователь восстановлен, нечитаемые подписки сведены к пустому списку
	require.NotNil(t, svc.CurrentUser())
	assert.Empty(t, svc.Snapshot().Subscriptions)
}

func TestLogin_TokenMakerFailureStillLogsIn(t *testing.T) {
	st := newFakeStorage()
	svc := New(newNoopLogger(), st, &stubTokenMaker{fail: true})

	token, ok := svc.Login("demo@example.com", "demo123")
	assert.True(t, ok)
	assert.Empty(t, token)
	require.NotNil(t, svc.CurrentUser())
}

func TestSnapshot_IsACopy(t *testing.T) {
	svc := newService(newFakeStorage())

	_, ok := svc.Login("demo@example.com", "demo123")
	require.True(t, ok)
	svc.Subscribe("course-1", 99.99)

	snap := svc.Snapshot()
	snap.User.Name = "mutated"
	snap.Subscriptions[0].CourseID = "course-999"

	assert.Equal(t, "Demo User", svc.CurrentUser().Name)
	assert.True(t, svc.IsSubscribed("course-1"))
	assert.False(t, svc.IsSubscribed("course-999"))
}
