// internal/domain/models/student.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Student is an applicant account. Signup fills the identity fields only;
// everything else arrives through profile updates.
type Student struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	FullName     string             `bson:"full_name" json:"fullName"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"password_hash" json:"-"`

	DOB           *time.Time `bson:"dob,omitempty" json:"dob,omitempty"`
	Gender        string     `bson:"gender,omitempty" json:"gender,omitempty"`
	Nationality   string     `bson:"nationality,omitempty" json:"nationality,omitempty"`
	Address       string     `bson:"address,omitempty" json:"address,omitempty"`
	ContactNumber string     `bson:"contact_number,omitempty" json:"contactNumber,omitempty"`

	// Free-text references; not checked against existing records.
	AppliedUniversity string `bson:"applied_university,omitempty" json:"appliedUniversity,omitempty"`
	AppliedCampus     string `bson:"applied_campus,omitempty" json:"appliedCampus,omitempty"`
	AppliedProgram    string `bson:"applied_program,omitempty" json:"appliedProgram,omitempty"`

	MatricBoard    string   `bson:"matric_board,omitempty" json:"matricBoard,omitempty"`
	MatricYear     *int     `bson:"matric_year,omitempty" json:"matricYear,omitempty"`
	MatricMarks    string   `bson:"matric_marks,omitempty" json:"matricMarks,omitempty"`
	MatricSubjects []string `bson:"matric_subjects,omitempty" json:"matricSubjects,omitempty"`

	InterBoard    string   `bson:"inter_board,omitempty" json:"interBoard,omitempty"`
	InterYear     *int     `bson:"inter_year,omitempty" json:"interYear,omitempty"`
	InterMarks    string   `bson:"inter_marks,omitempty" json:"interMarks,omitempty"`
	InterSubjects []string `bson:"inter_subjects,omitempty" json:"interSubjects,omitempty"`

	BachelorUni   string   `bson:"bachelor_uni,omitempty" json:"bachelorUni,omitempty"`
	BachelorYear  *int     `bson:"bachelor_year,omitempty" json:"bachelorYear,omitempty"`
	BachelorMarks string   `bson:"bachelor_marks,omitempty" json:"bachelorMarks,omitempty"`
	BachelorMajor []string `bson:"bachelor_major,omitempty" json:"bachelorMajor,omitempty"`

	MasterUni   string   `bson:"master_uni,omitempty" json:"masterUni,omitempty"`
	MasterYear  *int     `bson:"master_year,omitempty" json:"masterYear,omitempty"`
	MasterMarks string   `bson:"master_marks,omitempty" json:"masterMarks,omitempty"`
	MasterMajor []string `bson:"master_major,omitempty" json:"masterMajor,omitempty"`

	// Store-relative paths of uploaded documents (e.g. "uploads/1717171717171.pdf").
	IDDocumentPath         string `bson:"id_document_path,omitempty" json:"idDocumentPath,omitempty"`
	MatricTranscriptPath   string `bson:"matric_transcript_path,omitempty" json:"matricTranscriptPath,omitempty"`
	InterTranscriptPath    string `bson:"inter_transcript_path,omitempty" json:"interTranscriptPath,omitempty"`
	BachelorTranscriptPath string `bson:"bachelor_transcript_path,omitempty" json:"bachelorTranscriptPath,omitempty"`
	MasterTranscriptPath   string `bson:"master_transcript_path,omitempty" json:"masterTranscriptPath,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
