//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"github.com/Fox-16s/reservat-io/internal/handler/dto/request"
	"github.com/Fox-16s/reservat-io/internal/handler/dto/response"
	"github.com/Fox-16s/reservat-io/tests/common/authtest"
	"github.com/Fox-16s/reservat-io/tests/common/dbtest"
	"github.com/Fox-16s/reservat-io/tests/common/httptest"
	"github.com/Fox-16s/reservat-io/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	signUpURL  = "/api/auth/signup"
	loginURL   = "/api/auth/login"
	logoutURL  = "/api/auth/logout"
	refreshURL = "/api/auth/refresh"
	meURL      = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
	jwtHelper *authtest.JWTHelper
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwtHelper = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	// テスト用ユーザーを作成
	dbtest.CreateTestUser(s.T(), s.DB, "test@example.com", "Giselle")
	dbtest.CreateTestUser(s.T(), s.DB, "inactive@example.com", "Inactive")
	dbtest.DeactivateUser(s.T(), s.DB, "inactive@example.com")
}

func (s *authSuite) TestSignUp() {
	tests := []struct {
		name           string
		req            request.SignUpRequest
		expectedStatus int
		description    string
	}{
		{
			name:           "正常な登録",
			req:            request.SignUpRequest{Email: "new@example.com", Password: "password123", Name: "Marta"},
			expectedStatus: http.StatusCreated,
			description:    "新しいユーザーが登録されること",
		},
		{
			name:           "登録済みのメールアドレス",
			req:            request.SignUpRequest{Email: "test@example.com", Password: "password123", Name: "Marta"},
			expectedStatus: http.StatusConflict,
			description:    "同じメールアドレスは登録できないこと",
		},
		{
			name:           "短いパスワード",
			req:            request.SignUpRequest{Email: "short@example.com", Password: "short", Name: "Marta"},
			expectedStatus: http.StatusBadRequest,
			description:    "8文字未満のパスワードは拒否されること",
		},
		{
			name:           "名前なし",
			req:            request.SignUpRequest{Email: "noname@example.com", Password: "password123"},
			expectedStatus: http.StatusBadRequest,
			description:    "名前は必須であること",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, signUpURL, tt.req, "")
			require.Equal(t, tt.expectedStatus, w.Code, tt.description)

			if tt.expectedStatus == http.StatusCreated {
				var res response.LoginResponse
				httptest.AssertSuccessResponse(t, w, http.StatusCreated, &res)
				require.NotEmpty(t, res.AccessToken)

				var name string
				err := s.DB.QueryRow(t.Context(),
					"SELECT p.name FROM profiles p JOIN users u ON u.id = p.id WHERE u.email = $1", tt.req.Email).Scan(&name)
				require.NoError(t, err)
				require.Equal(t, tt.req.Name, name, "プロフィールが作成されていない")
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
			email:          "test@example.com",
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
			email:          "test@example.com",
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
			email:          "test@example.com",
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
				var loginRes response.LoginResponse
				err := httptest.DecodeResponseBody(t, w.Body, &loginRes)
				require.NoError(t, err)
				require.NotEmpty(t, loginRes.AccessToken, "アクセストークンが空")
				require.NotNil(t, httptest.ExtractCookie(w, "refresh_token"), "リフレッシュトークンのクッキーがない")
			}
		})
	}
}

func (s *authSuite) TestRefresh() {
	tests := []struct {
		name              string
		setupRefreshToken func() string
		expectedStatus    int
		description       string
	}{
		{
			name: "正常なリフレッシュ",
			setupRefreshToken: func() string {
				reqBody := request.LoginRequest{Email: "test@example.com", Password: "password123"}
				w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL, reqBody, "")
				c := httptest.ExtractCookie(w, "refresh_token")
				require.NotNil(s.T(), c)
				return c.Value
			},
			expectedStatus: http.StatusOK,
			description:    "有効なリフレッシュトークンでトークンが更新されること",
		},
		{
			name: "アクセストークンはリフレッシュに使えない",
			setupRefreshToken: func() string {
				return authtest.LoginUser(s.T(), s.Router, "test@example.com", "password123")
			},
			expectedStatus: http.StatusUnauthorized,
			description:    "種類の違うトークンは拒否されること",
		},
		{
			name: "無効なリフレッシュトークン",
			setupRefreshToken: func() string {
				return "invalid-refresh-token"
			},
			expectedStatus: http.StatusUnauthorized,
			description:    "無効なリフレッシュトークンは拒否されること",
		},
		{
			name: "空のリフレッシュトークン",
			setupRefreshToken: func() string {
				return ""
			},
			expectedStatus: http.StatusUnauthorized,
			description:    "トークンなしは拒否されること",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			reqBody := request.RefreshRequest{RefreshToken: tt.setupRefreshToken()}

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL, reqBody, "")
			require.Equal(t, tt.expectedStatus, w.Code, tt.description)

			if tt.expectedStatus == http.StatusOK {
				require.NotNil(t, httptest.ExtractCookie(w, "access_token"), "新しいアクセストークンがない")
			}
		})
	}
}

func (s *authSuite) TestLogout() {
	s.Run("正常なログアウト", func() {
		t := s.T()
		token := authtest.LoginUser(t, s.Router, "test@example.com", "password123")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, logoutURL, nil, token)
		require.Equal(t, http.StatusNoContent, w.Code)

		c := httptest.ExtractCookie(w, "access_token")
		require.NotNil(t, c)
		require.Empty(t, c.Value, "クッキーが消去されていない")
	})

	s.Run("トークンなし", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, logoutURL, nil, "")
		require.Equal(s.T(), http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestMe() {
	s.Run("ログインユーザーの情報取得", func() {
		t := s.T()
		_, token := authtest.CreateAndLogin(t, s.DB, s.Router, "owner@example.com", "Owner")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		var me response.UserResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &me)
		require.Equal(t, "owner@example.com", me.Email)
		require.Equal(t, "Owner", me.Name)
		require.NotContains(t, w.Body.String(), "password", "レスポンスにパスワード情報が含まれている")
	})

	s.Run("無効なトークン", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, "invalid-token")
		require.Equal(s.T(), http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestTokenExpiry() {
	s.Run("期限切れトークンの拒否", func() {
		t := s.T()

		userID := dbtest.CreateTestUser(t, s.DB, "expiry@example.com", "Expiry")
		expiredToken := s.jwtHelper.CreateExpiredToken(t, userID)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, expiredToken)
		require.Equal(t, http.StatusUnauthorized, w.Code, "期限切れトークンは拒否されるべき")
	})

	s.Run("リフレッシュトークンでは認証できない", func() {
		t := s.T()

		userID := dbtest.CreateTestUser(t, s.DB, "refresh@example.com", "Refresh")
		refresh := s.jwtHelper.GenerateRefreshToken(t, userID)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, refresh)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestAuthenticationRequired() {
	s.Run("認証が必要なエンドポイント", func() {
		t := s.T()

		endpoints := []struct {
			method string
			path   string
		}{
			{http.MethodPost, logoutURL},
			{http.MethodGet, meURL},
			{http.MethodGet, "/api/properties"},
			{http.MethodGet, "/api/reservations"},
			{http.MethodPost, "/api/reservations"},
			{http.MethodGet, "/api/reports/monthly"},
			{http.MethodGet, "/api/banking"},
		}

		for _, endpoint := range endpoints {
			w := httptest.PerformRequest(t, s.Router, endpoint.method, endpoint.path, nil, "")
			require.Equal(t, http.StatusUnauthorized, w.Code, "認証なしでは拒否されるべき: %s %s", endpoint.method, endpoint.path)
		}
	})
}
