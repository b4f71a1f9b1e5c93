package repository

import (
	"time"

	"libraryhub/internal/library/models"
)

// NewSeededStore returns a store pre-populated with the demo catalogue,
// roster and three open loans. Quantities already account for the seeded
// loans, so quantity + len(borrowedBy) is the owned total for every book.
func NewSeededStore() *Store {
	now := time.Now()
	s := NewStore()

	s.students = []models.Student{
		{
			ID:        "student-1",
			Name:      "Nguyễn Văn An",
			Email:     "an.nguyen@example.com",
			Phone:     "0901234567",
			JoinDate:  time.Date(2023, 9, 1, 0, 0, 0, 0, time.UTC),
			BirthDate: "15/05/2010",
			Gender:    "Nam",
			Grade:     "8",
			ClassName: "8A1",
			Ethnicity: "Kinh",
			Address:   "123 Đường ABC, Quận 1, TP. HCM",
		},
		{
			ID:        "student-2",
			Name:      "Trần Thị Bình",
			Email:     "binh.tran@example.com",
			Phone:     "0912345678",
			JoinDate:  time.Date(2023, 9, 1, 0, 0, 0, 0, time.UTC),
			BirthDate: "20/08/2011",
			Gender:    "Nữ",
			Grade:     "7",
			ClassName: "7A2",
			Ethnicity: "Kinh",
			Address:   "456 Đường XYZ, Quận 3, TP. HCM",
		},
		{
			ID:        "student-3",
			Name:      "Lê Hoàng Cường",
			Email:     "cuong.le@example.com",
			Phone:     "0987654321",
			JoinDate:  time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
			BirthDate: "10/11/2009",
			Gender:    "Nam",
			Grade:     "9",
			ClassName: "9B1",
			Ethnicity: "Kinh",
			Address:   "789 Đường DEF, Quận Gò Vấp, TP. HCM",
		},
		{
			ID:        "student-4",
			Name:      "Phạm Thúy Duyên",
			Email:     "duyen.pham@example.com",
			Phone:     "0978123456",
			JoinDate:  time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC),
			BirthDate: "25/02/2010",
			Gender:    "Nữ",
			Grade:     "8",
			ClassName: "8A3",
			Ethnicity: "Kinh",
			Address:   "101 Đường GHI, Quận Bình Thạnh, TP. HCM",
		},
		{
			ID:        "student-5",
			Name:      "Hoàng Minh Hải",
			Email:     "hai.hoang@example.com",
			Phone:     "0965432109",
			JoinDate:  time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			BirthDate: "30/07/2011",
			Gender:    "Nam",
			Grade:     "7",
			ClassName: "7A2",
			Ethnicity: "Kinh",
			Address:   "212 Đường KLM, Quận 10, TP. HCM",
		},
	}

	s.books = []models.Book{
		{
			ID:          "book-1",
			Title:       "Dế Mèn Phiêu Lưu Ký",
			Author:      "Tô Hoài",
			ISBN:        "978-604-2-05996-8",
			Genre:       "Thiếu nhi",
			Description: "Cuộc phiêu lưu của chú Dế Mèn qua thế giới loài vật và những bài học đường đời sâu sắc.",
			Quantity:    4, // 5 owned, 1 out
			CoverImage:  "https://picsum.photos/seed/9786042059968/400/600",
			BorrowedBy:  []string{"student-1"},
		},
		{
			ID:          "book-2",
			Title:       "Harry Potter và Hòn Đá Phù Thủy",
			Author:      "J.K. Rowling",
			ISBN:        "978-604-1-19766-9",
			Genre:       "Giả tưởng",
			Description: "Tập đầu tiên trong series truyện về cậu bé phù thủy Harry Potter và những cuộc phiêu lưu tại trường Hogwarts.",
			Quantity:    2, // 3 owned, 1 out
			CoverImage:  "https://picsum.photos/seed/9786041197669/400/600",
			BorrowedBy:  []string{"student-2"},
		},
		{
			ID:          "book-3",
			Title:       "Số Đỏ",
			Author:      "Vũ Trọng Phụng",
			ISBN:        "978-604-9-69830-7",
			Genre:       "Văn học Việt Nam",
			Description: "Một tác phẩm châm biếm sâu cay về xã hội Việt Nam thời Pháp thuộc qua nhân vật Xuân Tóc Đỏ.",
			Quantity:    5,
			CoverImage:  "https://picsum.photos/seed/9786049698307/400/600",
			BorrowedBy:  []string{},
		},
		{
			ID:          "book-4",
			Title:       "Nhà Giả Kim",
			Author:      "Paulo Coelho",
			ISBN:        "978-604-3-46387-9",
			Genre:       "Tiểu thuyết",
			Description: "Hành trình đi tìm kho báu của cậu bé chăn cừu Santiago, một câu chuyện đầy triết lý về việc theo đuổi ước mơ.",
			Quantity:    6,
			CoverImage:  "https://picsum.photos/seed/9786043463879/400/600",
			BorrowedBy:  []string{},
		},
		{
			ID:          "book-5",
			Title:       "Lược Sử Loài Người",
			Author:      "Yuval Noah Harari",
			ISBN:        "978-604-3-45579-9",
			Genre:       "Khoa học",
			Description: "Cuốn sách kể về toàn bộ lịch sử của loài người, từ thời kỳ đồ đá cho đến cuộc cách mạng công nghệ.",
			Quantity:    3,
			CoverImage:  "https://picsum.photos/seed/9786043455799/400/600",
			BorrowedBy:  []string{},
		},
		{
			ID:          "book-6",
			Title:       "Conan - Tập 1",
			Author:      "Aoyama Gosho",
			ISBN:        "978-604-2-21111-3",
			Genre:       "Trinh thám",
			Description: "Cậu thám tử trung học Kudo Shinichi bị teo nhỏ và phá các vụ án dưới thân phận Edogawa Conan.",
			Quantity:    9, // 10 owned, 1 out
			CoverImage:  "https://picsum.photos/seed/9786042211113/400/600",
			BorrowedBy:  []string{"student-1"},
		},
		{
			ID:          "book-7",
			Title:       "Tôi Thấy Hoa Vàng Trên Cỏ Xanh",
			Author:      "Nguyễn Nhật Ánh",
			ISBN:        "978-604-2-16223-1",
			Genre:       "Thiếu nhi",
			Description: "Câu chuyện tuổi thơ trong sáng, hồn nhiên ở một làng quê nghèo Việt Nam những năm cuối 1980.",
			Quantity:    7,
			CoverImage:  "https://picsum.photos/seed/9786042162231/400/600",
			BorrowedBy:  []string{},
		},
		{
			ID:          "book-8",
			Title:       "Đắc Nhân Tâm",
			Author:      "Dale Carnegie",
			ISBN:        "978-604-5-88697-3",
			Genre:       "Kỹ năng sống",
			Description: "Cuốn sách self-help kinh điển về nghệ thuật giao tiếp, ứng xử và thu phục lòng người.",
			Quantity:    10,
			CoverImage:  "https://picsum.photos/seed/9786045886973/400/600",
			BorrowedBy:  []string{},
		},
	}

	s.records = []models.BorrowingRecord{
		{
			ID:         "record-1",
			BookID:     "book-1",
			StudentID:  "student-1",
			BorrowDate: now.AddDate(0, 0, -10),
			DueDate:    now.AddDate(0, 0, 4),
		},
		{
			ID:         "record-2",
			BookID:     "book-2",
			StudentID:  "student-2",
			BorrowDate: now.AddDate(0, 0, -20),
			DueDate:    now.AddDate(0, 0, -6), // overdue
		},
		{
			ID:         "record-3",
			BookID:     "book-6",
			StudentID:  "student-1",
			BorrowDate: now.AddDate(0, 0, -2),
			DueDate:    now.AddDate(0, 0, 12),
		},
	}

	return s
}
