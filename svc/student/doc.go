// Package student models a student registration with self-validating value
// objects.
//
// Name, Email and Document validate their input when constructed and keep the
// resulting messages instead of failing construction. A Student aggregates
// the three and reports one message per invalid component:
//
//	s := student.NewStudent(
//		student.NewName("João", "Silva"),
//		student.NewEmail("joao.silva@email.com"),
//		student.NewDocument("52998224725"),
//	)
//	if !s.IsValid() {
//		for _, msg := range s.Errors() {
//			fmt.Println(msg)
//		}
//	}
//
// Every rule is evaluated, so a value reports all of its failures at once.
// Messages are rendered through a Messages catalog; the embedded catalog
// ships Brazilian Portuguese (the default) and English.
package student
