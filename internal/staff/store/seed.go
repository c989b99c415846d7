package store

import (
	"context"

	"staffbook/internal/staff/models"
)

// Hirer is the write side a seed needs; the staff service satisfies it.
type Hirer interface {
	Hire(ctx context.Context, department models.Department, family, given, patronymic string, salary float64) (*models.Employee, error)
}

// SeedEntry is one row of the bootstrap staff list.
type SeedEntry struct {
	Department models.Department
	Family     string
	Given      string
	Patronymic string
	Salary     float64
}

// BootstrapStaff is the demo staff list loaded by the staffbook binary.
var BootstrapStaff = []SeedEntry{
	{models.DepartmentFirst, "Ivanov", "Ivan", "Ivanovich", 52000},
	{models.DepartmentFirst, "Gurevich", "Lyubov", "Yakovlevna", 61000},
	{models.DepartmentFirst, "Kuznetsova", "Olga", "Sergeevna", 48500},
	{models.DepartmentFirst, "Smirnov", "Pavel", "Andreevich", 57300},
	{models.DepartmentSecond, "Landa", "Yakov", "Semyonovich", 73000},
	{models.DepartmentSecond, "Petrova", "Maria", "Ilinichna", 44000},
	{models.DepartmentSecond, "Orlov", "Ilya", "Borisovich", 39900},
	{models.DepartmentSecond, "Sokolova", "Anna", "Viktorovna", 66100},
	{models.DepartmentThird, "Derevyankin", "Andrei", "Nikolaevich", 58200},
	{models.DepartmentThird, "Volkov", "Dmitry", "Olegovich", 81500},
	{models.DepartmentThird, "Lebedeva", "Elena", "Pavlovna", 47750},
	{models.DepartmentThird, "Kozlov", "Kirill", "", 35000},
	{models.DepartmentFourth, "Novikova", "Tatiana", "Yurievna", 69900},
	{models.DepartmentFourth, "Morozov", "Sergei", "Aleksandrovich", 54400},
	{models.DepartmentFourth, "Pavlova", "Irina", "Mikhailovna", 50250},
	{models.DepartmentFourth, "Semenov", "Nikolai", "Petrovich", 62800},
	{models.DepartmentFifth, "Egorova", "Svetlana", "Igorevna", 71200},
	{models.DepartmentFifth, "Vinogradov", "Oleg", "Romanovich", 45600},
	{models.DepartmentFifth, "Bogdanova", "Natalia", "Evgenievna", 58800},
	{models.DepartmentFifth, "Fedorov", "Maksim", "Vadimovich", 77700},
}

// SeedBootstrapStaff hires every entry in order and returns how many were
// stored. It stops at the first error, which includes a full book.
func SeedBootstrapStaff(ctx context.Context, h Hirer, entries []SeedEntry) (int, error) {
	for i, e := range entries {
		if _, err := h.Hire(ctx, e.Department, e.Family, e.Given, e.Patronymic, e.Salary); err != nil {
			return i, err
		}
	}
	return len(entries), nil
}
