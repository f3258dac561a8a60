package payload_test

import (
	"net/http"
	"strings"

	"blogr/internal/http/payload"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("AuthRequest", func() {
	var req payload.AuthRequest

	BeforeEach(func() {
		req = payload.AuthRequest{
			Username: "alice@example.com",
			Password: "secret",
		}
	})

	It("accepts a valid email and password", func() {
		Expect(req.Validate()).To(Succeed())
	})

	It("rejects a username that is not an email", func() {
		req.Username = "not-an-email"
		Expect(req.Validate()).NotTo(Succeed())
	})

	It("rejects an empty username", func() {
		req.Username = ""
		Expect(req.Validate()).NotTo(Succeed())
	})

	It("rejects a password shorter than 5 characters", func() {
		req.Password = "1234"
		Expect(req.Validate()).NotTo(Succeed())
	})

	It("accepts a password of exactly 5 characters", func() {
		req.Password = "12345"
		Expect(req.Validate()).To(Succeed())
	})
})

var _ = Describe("DecodeValidator", func() {
	var dv payload.DecodeValidator

	It("decodes and validates in one pass", func() {
		body := strings.NewReader(`{"username":"alice@example.com","password":"secret"}`)
		r, err := http.NewRequest("POST", "/register", body)
		Expect(err).NotTo(HaveOccurred())

		var req payload.AuthRequest
		Expect(dv.DecodeAndValidateJSONPayload(r, &req)).To(Succeed())
		Expect(req.Username).To(Equal("alice@example.com"))
	})

	It("rejects unknown fields", func() {
		body := strings.NewReader(`{"username":"alice@example.com","password":"secret","admin":true}`)
		r, err := http.NewRequest("POST", "/register", body)
		Expect(err).NotTo(HaveOccurred())

		var req payload.AuthRequest
		Expect(dv.DecodeAndValidateJSONPayload(r, &req)).NotTo(Succeed())
	})

	It("surfaces validation failures", func() {
		body := strings.NewReader(`{"username":"nope","password":"secret"}`)
		r, err := http.NewRequest("POST", "/register", body)
		Expect(err).NotTo(HaveOccurred())

		var req payload.AuthRequest
		Expect(dv.DecodeAndValidateJSONPayload(r, &req)).NotTo(Succeed())
	})
})

var _ = Describe("PostForm", func() {
	It("requires an id for updates", func() {
		form := payload.PostForm{Title: "T"}
		Expect(form.ValidateForUpdate()).NotTo(Succeed())

		form.ID = "p1"
		Expect(form.ValidateForUpdate()).To(Succeed())
	})

	It("maps to a post message", func() {
		form := payload.PostForm{ID: "p1", Title: "T", Summary: "S", Content: "C"}
		msg := form.ToMessage()
		Expect(msg.Title).To(Equal("T"))
		Expect(msg.Summary).To(Equal("S"))
		Expect(msg.Content).To(Equal("C"))
	})
})
