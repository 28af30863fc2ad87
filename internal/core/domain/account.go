// internal/core/domain/account.go
package domain

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Role is the highest-privilege role an account holds
type Role string

const (
	RoleAdmin        Role = "admin"
	RoleVeterinarian Role = "veterinarian"
	RoleTrainer      Role = "trainer"
	RoleCaretaker    Role = "caretaker"
	RoleVisitor      Role = "visitor"
)

// IsStaff reports whether the role belongs to zoo staff
func (r Role) IsStaff() bool {
	return r == RoleAdmin || r == RoleVeterinarian || r == RoleTrainer || r == RoleCaretaker
}

// Account is a row of pengguna
type Account struct {
	Username    string  `json:"username"`
	Email       string  `json:"email"`
	Password    string  `json:"password,omitempty"`
	FirstName   string  `json:"nama_depan"`
	MiddleName  *string `json:"nama_tengah,omitempty"`
	LastName    string  `json:"nama_belakang"`
	PhoneNumber string  `json:"no_telepon"`
}

func (a *Account) Columns() []string {
	return []string{"username", "email", "password", "nama_depan", "nama_tengah", "nama_belakang", "no_telepon"}
}

func (a *Account) Values() []any {
	return []any{a.Username, a.Email, a.Password, a.FirstName, a.MiddleName, a.LastName, a.PhoneNumber}
}

func (a *Account) Pointers() []any {
	return []any{&a.Username, &a.Email, &a.Password, &a.FirstName, &a.MiddleName, &a.LastName, &a.PhoneNumber}
}

// FullName joins the name parts, skipping an empty middle name
func (a *Account) FullName() string {
	parts := []string{a.FirstName}
	if a.MiddleName != nil && *a.MiddleName != "" {
		parts = append(parts, *a.MiddleName)
	}
	parts = append(parts, a.LastName)
	return strings.Join(parts, " ")
}

// Validate performs domain validation on the account
func (a *Account) Validate() error {
	if a.Username == "" {
		return fmt.Errorf("username is required")
	}
	if _, err := mail.ParseAddress(a.Email); err != nil {
		return fmt.Errorf("email is invalid")
	}
	if len(a.Password) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}
	if a.FirstName == "" || a.LastName == "" {
		return fmt.Errorf("first and last name are required")
	}
	return nil
}

// Visitor is a row of pengunjung
type Visitor struct {
	Username  string    `json:"username_p"`
	Address   string    `json:"alamat"`
	BirthDate time.Time `json:"tgl_lahir"`
}

func (v *Visitor) Columns() []string { return []string{"username_p", "alamat", "tgl_lahir"} }
func (v *Visitor) Values() []any     { return []any{v.Username, v.Address, v.BirthDate} }
func (v *Visitor) Pointers() []any   { return []any{&v.Username, &v.Address, &v.BirthDate} }

// Veterinarian is a row of dokter_hewan
type Veterinarian struct {
	Username      string `json:"username_dh"`
	LicenseNumber string `json:"no_str"`
}

func (v *Veterinarian) Columns() []string { return []string{"username_dh", "no_str"} }
func (v *Veterinarian) Values() []any     { return []any{v.Username, v.LicenseNumber} }
func (v *Veterinarian) Pointers() []any   { return []any{&v.Username, &v.LicenseNumber} }

// Specialization is a row of spesialisasi
type Specialization struct {
	Username string `json:"username_sh"`
	Name     string `json:"nama_spesialisasi"`
}

func (s *Specialization) Columns() []string { return []string{"username_sh", "nama_spesialisasi"} }
func (s *Specialization) Values() []any     { return []any{s.Username, s.Name} }
func (s *Specialization) Pointers() []any   { return []any{&s.Username, &s.Name} }

// Staff is the shape shared by trainer, caretaker and admin rows. Each
// table names its username column differently.
type Staff struct {
	Username string    `json:"username"`
	StaffID  uuid.UUID `json:"id_staf"`
}

// Trainer is a row of pelatih_hewan
type Trainer Staff

func (s *Trainer) Columns() []string { return []string{"username_lh", "id_staf"} }
func (s *Trainer) Values() []any     { return []any{s.Username, s.StaffID} }
func (s *Trainer) Pointers() []any   { return []any{&s.Username, &s.StaffID} }

// Caretaker is a row of penjaga_hewan
type Caretaker Staff

func (s *Caretaker) Columns() []string { return []string{"username_jh", "id_staf"} }
func (s *Caretaker) Values() []any     { return []any{s.Username, s.StaffID} }
func (s *Caretaker) Pointers() []any   { return []any{&s.Username, &s.StaffID} }

// StaffAdmin is a row of staf_admin
type StaffAdmin Staff

func (s *StaffAdmin) Columns() []string { return []string{"username_sa", "id_staf"} }
func (s *StaffAdmin) Values() []any     { return []any{s.Username, s.StaffID} }
func (s *StaffAdmin) Pointers() []any   { return []any{&s.Username, &s.StaffID} }

// Session is the authenticated identity returned by a successful login
type Session struct {
	Username string `json:"username"`
	Role     Role   `json:"role"`
	Name     string `json:"name"`
}
