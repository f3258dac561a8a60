package uploads_test

import (
	"os"
	"path/filepath"
	"strings"

	"blogr/internal/uploads"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Store", func() {
	var (
		dir   string
		store *uploads.Store
	)

	BeforeEach(func() {
		var err error
		dir, err = os.MkdirTemp("", "uploads-test")
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(os.RemoveAll, dir)

		store, err = uploads.NewStore(dir)
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("NewStore", func() {
		It("creates the directory when missing", func() {
			nested := filepath.Join(dir, "a", "b")
			_, err := uploads.NewStore(nested)
			Expect(err).NotTo(HaveOccurred())
			Expect(nested).To(BeADirectory())
		})
	})

	Describe("Save", func() {
		It("writes the content under a random name with the original extension", func() {
			path, err := store.Save(strings.NewReader("image-bytes"), "cover.jpg")
			Expect(err).NotTo(HaveOccurred())

			Expect(filepath.Dir(path)).To(Equal(dir))
			Expect(filepath.Ext(path)).To(Equal(".jpg"))
			Expect(filepath.Base(path)).NotTo(Equal("cover.jpg"))

			content, err := os.ReadFile(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(content)).To(Equal("image-bytes"))
		})

		It("keeps extensionless names extensionless", func() {
			path, err := store.Save(strings.NewReader("x"), "noext")
			Expect(err).NotTo(HaveOccurred())
			Expect(filepath.Ext(path)).To(BeEmpty())
		})

		It("gives every upload a distinct name", func() {
			first, err := store.Save(strings.NewReader("a"), "cover.png")
			Expect(err).NotTo(HaveOccurred())
			second, err := store.Save(strings.NewReader("b"), "cover.png")
			Expect(err).NotTo(HaveOccurred())
			Expect(first).NotTo(Equal(second))
		})
	})
})
