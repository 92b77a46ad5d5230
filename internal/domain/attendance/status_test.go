package attendance

import (
	"testing"

	"github.com/magang-absensi/attendance-backend-go/internal/pkg/geo"
	"github.com/stretchr/testify/assert"
)

var (
	testFence = geo.Fence{
		Office:       geo.Coordinate{Latitude: -3.3089332, Longitude: 114.613662},
		RadiusMeters: 100,
	}
	atOffice      = &geo.Coordinate{Latitude: -3.3089332, Longitude: 114.613662}
	northOfOffice = &geo.Coordinate{Latitude: -3.3099332, Longitude: 114.613662} // ~111m
)

func TestDeriveStatus(t *testing.T) {
	cases := []struct {
		name    string
		current Status
		trigger Trigger
		checkIn *geo.Coordinate
		want    Status
	}{
		// coordinate-only edits
		{"leave approved keeps status on coordinate edit", StatusLeaveApproved, CoordinateEdit(), northOfOffice, StatusLeaveApproved},
		{"leave approved keeps status even inside fence", StatusLeaveApproved, CoordinateEdit(), atOffice, StatusLeaveApproved},
		{"leave requested keeps status on coordinate edit", StatusLeaveRequested, CoordinateEdit(), atOffice, StatusLeaveRequested},
		{"absent is not promoted by coordinate edit", StatusAbsent, CoordinateEdit(), atOffice, StatusAbsent},
		{"present moved outside", StatusPresent, CoordinateEdit(), northOfOffice, StatusOutsideArea},
		{"outside moved back inside", StatusOutsideArea, CoordinateEdit(), atOffice, StatusPresent},
		{"present with cleared coordinate", StatusPresent, CoordinateEdit(), nil, StatusPresent},

		// explicit status edits
		{"leave approved explicitly set present at office", StatusLeaveApproved, StatusEdit(StatusPresent), atOffice, StatusPresent},
		{"leave approved explicitly set present far away", StatusLeaveApproved, StatusEdit(StatusPresent), northOfOffice, StatusOutsideArea},
		{"present requested without coordinate", StatusAbsent, StatusEdit(StatusPresent), nil, StatusPresent},
		{"leave approved explicitly set outside area at office", StatusLeaveApproved, StatusEdit(StatusOutsideArea), atOffice, StatusOutsideArea},
		{"leave requested explicitly set outside area at office", StatusLeaveRequested, StatusEdit(StatusOutsideArea), atOffice, StatusOutsideArea},
		{"leave approved explicitly set absent", StatusLeaveApproved, StatusEdit(StatusAbsent), atOffice, StatusAbsent},
		{"outside area requested at office is reclassified", StatusPresent, StatusEdit(StatusOutsideArea), atOffice, StatusPresent},
		{"explicit absent wins over coordinate", StatusPresent, StatusEdit(StatusAbsent), atOffice, StatusAbsent},
		{"explicit leave approval", StatusLeaveRequested, StatusEdit(StatusLeaveApproved), northOfOffice, StatusLeaveApproved},
		{"explicit leave request", StatusPresent, StatusEdit(StatusLeaveRequested), atOffice, StatusLeaveRequested},
		{"unknown requested status is ignored", StatusAbsent, StatusEdit(Status("Libur")), atOffice, StatusAbsent},

		// no trigger
		{"zero trigger keeps status", StatusPresent, Trigger{}, northOfOffice, StatusPresent},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := DeriveStatus(c.current, c.trigger, c.checkIn, testFence)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestDeriveStatus_ConcreteScenarios(t *testing.T) {
	// ~111m north of the office with a 100m radius
	assert.Equal(t, StatusOutsideArea, DeriveStatus(StatusPresent, StatusEdit(StatusPresent), northOfOffice, testFence))

	// exactly at the office coordinate
	assert.Equal(t, StatusPresent, DeriveStatus(StatusAbsent, StatusEdit(StatusPresent), atOffice, testFence))
}

func TestStatus_IsValid(t *testing.T) {
	for _, s := range AllStatuses {
		assert.True(t, s.IsValid(), s)
	}
	assert.False(t, Status("").IsValid())
	assert.False(t, Status("hadir").IsValid())
}

func TestAttendance_DeviceIDAndCoordinate(t *testing.T) {
	lat, lon := -3.3, 114.6
	blank := "   "
	id := " dev-123 "

	assert.Equal(t, "", Attendance{}.DeviceID())
	assert.False(t, Attendance{}.HasDevice())
	assert.False(t, Attendance{AndroidID: &blank}.HasDevice())
	assert.Equal(t, " dev-123 ", Attendance{AndroidID: &id}.DeviceID(), "stored as recorded")
	assert.True(t, Attendance{AndroidID: &id}.HasDevice())

	assert.Nil(t, Attendance{CheckInLatitude: &lat}.CheckInCoordinate())
	assert.Equal(t, &geo.Coordinate{Latitude: lat, Longitude: lon}, Attendance{CheckInLatitude: &lat, CheckInLongitude: &lon}.CheckInCoordinate())
}
