package proto

import "github.com/dmitrijs2005/rosterkeeper/internal/models"

// EmployeeFromModel converts a roster record to its wire form.
func EmployeeFromModel(e models.Employee) *Employee {
	return &Employee{
		Id:             e.ID,
		Name:           e.Name,
		EmployeeNumber: e.EmployeeNumber,
		Email:          e.Email,
		Phone:          e.Phone,
	}
}

// ToModel converts x back to a roster record. A nil x gives the zero value.
func (x *Employee) ToModel() models.Employee {
	return models.Employee{
		ID:             x.GetId(),
		Name:           x.GetName(),
		EmployeeNumber: x.GetEmployeeNumber(),
		Email:          x.GetEmail(),
		Phone:          x.GetPhone(),
	}
}

func FieldsFromModel(f models.EmployeeFields) *EmployeeFields {
	return &EmployeeFields{
		Name:           f.Name,
		EmployeeNumber: f.EmployeeNumber,
		Email:          f.Email,
		Phone:          f.Phone,
	}
}

func (x *EmployeeFields) ToModel() models.EmployeeFields {
	return models.EmployeeFields{
		Name:           x.GetName(),
		EmployeeNumber: x.GetEmployeeNumber(),
		Email:          x.GetEmail(),
		Phone:          x.GetPhone(),
	}
}

func EmployeesFromModels(list []models.Employee) []*Employee {
	out := make([]*Employee, 0, len(list))
	for _, e := range list {
		out = append(out, EmployeeFromModel(e))
	}
	return out
}

// EmployeesToModels never returns nil.
func EmployeesToModels(list []*Employee) []models.Employee {
	out := make([]models.Employee, 0, len(list))
	for _, e := range list {
		out = append(out, e.ToModel())
	}
	return out
}
