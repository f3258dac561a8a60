package core_test

import (
	"context"
	"errors"

	"blogr/internal/core"
	"blogr/internal/core/fake"
	"blogr/internal/repository"
	tokenIssuer "blogr/pkg/jwt"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var _ = Describe("Auth", func() {
	var (
		fakeRepo   *fake.Repository
		fakeJWT    *fake.TokenIssuer
		fakeLogger *zap.SugaredLogger
		ctx        context.Context

		auth *core.Auth

		fakeErr error
	)

	BeforeEach(func() {
		fakeRepo = new(fake.Repository)
		fakeJWT = new(fake.TokenIssuer)
		fakeLogger = zap.NewNop().Sugar()
		ctx = context.Background()

		auth = core.NewAuth(fakeLogger, fakeRepo, fakeJWT, bcrypt.MinCost)

		fakeErr = errors.New("fake error")
	})

	Describe("Register", func() {
		var (
			authMsg core.AuthMessage
			user    core.UserRecord
			err     error
		)

		BeforeEach(func() {
			authMsg = core.AuthMessage{
				Username: "alice@example.com",
				Password: "testpass",
			}
		})

		JustBeforeEach(func() {
			user, err = auth.Register(ctx, authMsg)
		})

		When("the username is free", func() {
			BeforeEach(func() {
				fakeRepo.CreateUserReturns(nil)
			})

			It("stores a salted hash, never the plaintext", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeRepo.CreateUserCallCount()).To(Equal(1))
				_, stored := fakeRepo.CreateUserArgsForCall(0)
				Expect(stored.Username).To(Equal(authMsg.Username))
				Expect(stored.PasswordHash).NotTo(Equal(authMsg.Password))
				Expect(bcrypt.CompareHashAndPassword(
					[]byte(stored.PasswordHash), []byte(authMsg.Password))).To(Succeed())
			})

			It("returns the public fields only", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(user.Username).To(Equal(authMsg.Username))
				Expect(user.ID).NotTo(BeEmpty())
			})
		})

		When("the username is already taken", func() {
			BeforeEach(func() {
				fakeRepo.CreateUserReturns(repository.ErrDuplicateUser)
			})

			It("returns a duplicate user error", func() {
				Expect(err).To(MatchError(core.ErrDuplicateUser))
			})
		})

		When("the repository fails", func() {
			BeforeEach(func() {
				fakeRepo.CreateUserReturns(fakeErr)
			})

			It("returns the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("Login", func() {
		var (
			authMsg        core.AuthMessage
			token          string
			user           core.UserRecord
			err            error
			userId         string
			hashedPassword string
			genToken       *jwt.Token
		)

		BeforeEach(func() {
			userId = uuid.New().String()
			hashedPassword = "$2a$10$1MZHKX./8Dxi9t.F1/gnx.njCcEty299Hx01GLEms2moa3brpT0ky" // bcrypt hash of "testpass"
			genToken = jwt.New(jwt.SigningMethodHS512)

			authMsg = core.AuthMessage{
				Username: "alice@example.com",
				Password: "testpass",
			}
		})

		JustBeforeEach(func() {
			token, user, err = auth.Login(ctx, authMsg)
		})

		When("user exists and password matches", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{
					ID:           userId,
					Username:     authMsg.Username,
					PasswordHash: hashedPassword,
				}, nil)

				fakeJWT.GenerateReturns(genToken)
				fakeJWT.SignReturns("signed.token", nil)
			})

			It("should return a signed token and the public user", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(token).To(Equal("signed.token"))
				Expect(user.ID).To(Equal(userId))
				Expect(user.Username).To(Equal(authMsg.Username))

				Expect(fakeRepo.GetUserByUsernameCallCount()).To(Equal(1))
				_, username := fakeRepo.GetUserByUsernameArgsForCall(0)
				Expect(username).To(Equal(authMsg.Username))

				Expect(fakeJWT.GenerateCallCount()).To(Equal(1))
				argGen := fakeJWT.GenerateArgsForCall(0)
				Expect(argGen).To(Equal(tokenIssuer.TokenInfo{
					UserName: authMsg.Username,
					Subject:  userId,
				}))

				Expect(fakeJWT.SignCallCount()).To(Equal(1))
				argSign := fakeJWT.SignArgsForCall(0)
				Expect(argSign).To(Equal(genToken))
			})
		})

		When("user does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{}, repository.ErrUserNotFound)
			})

			It("should return user not found error and no token", func() {
				Expect(err).To(MatchError(core.ErrUserNotFound))
				Expect(token).To(BeEmpty())
			})
		})

		When("password does not match", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{
					ID:           userId,
					Username:     authMsg.Username,
					PasswordHash: hashedPassword,
				}, nil)
				authMsg.Password = "wrongpass"
			})

			It("should return incorrect password error and no token", func() {
				Expect(err).To(MatchError(core.ErrIncorrectPassword))
				Expect(token).To(BeEmpty())
				Expect(fakeJWT.SignCallCount()).To(Equal(0))
			})
		})

		When("token signing fails", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{
					ID:           userId,
					Username:     authMsg.Username,
					PasswordHash: hashedPassword,
				}, nil)
				fakeJWT.GenerateReturns(genToken)
				fakeJWT.SignReturns("", fakeErr)
			})

			It("should return signing error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("VerifySession", func() {
		var (
			identity core.Identity
			err      error
			userId   string
		)

		BeforeEach(func() {
			userId = uuid.New().String()
		})

		JustBeforeEach(func() {
			identity, err = auth.VerifySession("some.token")
		})

		When("the token signature verifies", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(jwt.MapClaims{
					"sub":      userId,
					"username": "alice@example.com",
				}, nil)
			})

			It("returns the embedded identity", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(identity.ID).To(Equal(userId))
				Expect(identity.Username).To(Equal("alice@example.com"))

				Expect(fakeJWT.ValidateCallCount()).To(Equal(1))
				Expect(fakeJWT.ValidateArgsForCall(0)).To(Equal("some.token"))
			})
		})

		When("the token is invalid", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(nil, fakeErr)
			})

			It("returns an invalid token error", func() {
				Expect(err).To(MatchError(core.ErrInvalidToken))
			})
		})

		When("the subject claim is missing", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(jwt.MapClaims{"username": "alice@example.com"}, nil)
			})

			It("returns an invalid token error", func() {
				Expect(err).To(MatchError(core.ErrInvalidToken))
			})
		})
	})
})
