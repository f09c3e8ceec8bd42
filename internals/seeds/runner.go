package seeds

import (
	"gorm.io/gorm"
)

func RunAllSeeds(db *gorm.DB) {
	SeedStudentsFromJSON(db, "internals/seeds/data/data_students.json")
	SeedCoursesFromJSON(db, "internals/seeds/data/data_courses.json")
	SeedBatchesFromJSON(db, "internals/seeds/data/data_batches.json")
}
