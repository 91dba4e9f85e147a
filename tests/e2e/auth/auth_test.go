//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"stayhub/internal/domain/user"
	"stayhub/internal/handler/dto/request"
	"stayhub/internal/handler/dto/response"
	"stayhub/internal/pkg/cookie"
	"stayhub/tests/common/authtest"
	"stayhub/tests/common/dbtest"
	"stayhub/tests/common/httptest"
	"stayhub/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	registerURL = "/api/auth/register"
	loginURL    = "/api/auth/login"
	logoutURL   = "/api/auth/logout"
	meURL       = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	// テスト用ユーザーを作成
	dbtest.CreateTestUser(s.T(), s.DB, "client@example.com", string(user.RoleClient))
	dbtest.CreateTestUser(s.T(), s.DB, "owner@example.com", string(user.RoleOwner))
	dbtest.CreateTestUser(s.T(), s.DB, "inactive@example.com", string(user.RoleClient))

	// 非アクティブユーザーを作成
	ctx := s.T().Context()
	_, err := s.DB.Exec(ctx, "UPDATE users SET is_active = false WHERE email = 'inactive@example.com'")
	require.NoError(s.T(), err)
}

func (s *authSuite) TestRegister() {
	tests := []struct {
		name           string
		email          string
		role           string
		expectedStatus int
		description    string
	}{
		{
			name:           "正常な登録",
			email:          "fresh@example.com",
			role:           "client",
			expectedStatus: http.StatusCreated,
			description:    "新規ユーザーが登録できること",
		},
		{
			name:           "オーナー登録",
			email:          "newowner@example.com",
			role:           "owner",
			expectedStatus: http.StatusCreated,
			description:    "オーナーロールでも登録できること",
		},
		{
			name:           "重複メールアドレス",
			email:          "client@example.com",
			role:           "client",
			expectedStatus: http.StatusConflict,
			description:    "登録済みメールアドレスは拒否されること",
		},
		{
			name:           "不正なロール",
			email:          "admin@example.com",
			role:           "admin",
			expectedStatus: http.StatusBadRequest,
			description:    "未定義のロールは拒否されること",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			reqBody := request.RegisterRequest{
				Email:    tt.email,
				Password: "password123",
				Role:     tt.role,
			}

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, reqBody, "")
			require.Equal(t, tt.expectedStatus, w.Code, tt.description)

			if tt.expectedStatus == http.StatusCreated {
				var res response.RegisterResponse
				httptest.AssertSuccessResponse(t, w, http.StatusCreated, &res)
				require.Equal(t, tt.email, res.User.Email)
				require.Equal(t, tt.role, res.User.Role)

				// 登録直後にログインできること
				lw := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
					request.LoginRequest{Email: tt.email, Password: "password123"}, "")
				require.Equal(t, http.StatusOK, lw.Code)
			}
		})
	}
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
		description    string
	}{
		{
			name:           "正常なログイン",
			email:          "client@example.com",
			password:       "password123",
			expectedStatus: http.StatusOK,
			description:    "有効な認証情報でログインできること",
		},
		{
			name:           "存在しないユーザー",
			email:          "nonexistent@example.com",
			password:       "password123",
			expectedStatus: http.StatusUnauthorized,
			description:    "存在しないユーザーでログインできないこと",
		},
		{
			name:           "間違ったパスワード",
			email:          "client@example.com",
			password:       "wrongpassword",
			expectedStatus: http.StatusUnauthorized,
			description:    "間違ったパスワードでログインできないこと",
		},
		{
			name:           "非アクティブユーザー",
			email:          "inactive@example.com",
			password:       "password123",
			expectedStatus: http.StatusForbidden,
			description:    "非アクティブユーザーはログインできないこと",
		},
		{
			name:           "空のメールアドレス",
			email:          "",
			password:       "password123",
			expectedStatus: http.StatusBadRequest,
			description:    "空のメールアドレスは拒否されること",
		},
		{
			name:           "空のパスワード",
			email:          "client@example.com",
			password:       "",
			expectedStatus: http.StatusBadRequest,
			description:    "空のパスワードは拒否されること",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			reqBody := request.LoginRequest{
				Email:    tt.email,
				Password: tt.password,
			}

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqBody, "")
			require.Equal(t, tt.expectedStatus, w.Code, tt.description)

			if tt.expectedStatus == http.StatusOK {
				var res response.LoginResponse
				httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
				require.NotEmpty(t, res.AccessToken)
				require.Equal(t, tt.email, res.User.Email)

				accessCookie := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
				require.NotNil(t, accessCookie)
				require.Equal(t, res.AccessToken, accessCookie.Value)
				require.True(t, accessCookie.HttpOnly)
			}
		})
	}
}

func (s *authSuite) TestMe() {
	s.Run("認証済みユーザーは自分の情報を取得できる", func() {
		t := s.T()

		token := authtest.LoginUser(t, s.Router, "client@example.com", "password123")
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)

		var me struct {
			Email string `json:"email"`
			Role  string `json:"role"`
		}
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &me)
		require.Equal(t, "client@example.com", me.Email)
		require.Equal(t, "client", me.Role)
	})

	s.Run("未認証のリクエストは拒否される", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestLogout() {
	s.Run("ログアウトでクッキーが無効化される", func() {
		t := s.T()

		token := authtest.LoginUser(t, s.Router, "owner@example.com", "password123")
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, logoutURL, nil, token)
		require.Equal(t, http.StatusNoContent, w.Code)

		cleared := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
		require.NotNil(t, cleared)
		require.Empty(t, cleared.Value)
		require.Negative(t, cleared.MaxAge)
	})
}
