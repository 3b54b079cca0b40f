package get_slot_sheet

import "fmt"

// validateRequest checks the request identifiers and date.
func validateRequest(req *Request) error {
	if req.DepartmentID <= 0 {
		return fmt.Errorf("%w: departmentID must be positive", ErrInvalidInput)
	}

	if req.DoctorID <= 0 {
		return fmt.Errorf("%w: doctorID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}
