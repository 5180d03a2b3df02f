package planning

import (
	"testing"

	"go.viam.com/highwayplanner/logging"
	"go.viam.com/highwayplanner/roadmap"
	"go.viam.com/highwayplanner/units"
	"go.viam.com/test"
)

func TestVelocityStepMagnitudeAndSign(t *testing.T) {
	test.That(t, float64(velocityStep(acceleration)), test.ShouldAlmostEqual, 0.1, 1e-9)
	test.That(t, float64(velocityStep(deceleration)), test.ShouldAlmostEqual, -0.1, 1e-9)
}

func TestPredictFrenetSConstantVelocity(t *testing.T) {
	got := predictFrenetS(10, 20, 5)
	test.That(t, got, test.ShouldAlmostEqual, 10+5*actuatorStepPeriod*20, 1e-9)
}

func TestCalculateTargetVelocityAcceleratesWithNoLeader(t *testing.T) {
	ds := NewDataSource()
	ds.SetVehicleDynamics(VehicleDynamics{Frenet: roadmap.FrenetCoordinates{S: 0, D: 6}})
	vp := NewVelocityPlanner(ds, logging.NewLogger("test"))

	vp.CalculateTargetVelocity()
	test.That(t, float64(vp.GetTargetVelocity()), test.ShouldAlmostEqual, 0.1, 1e-9)
}

func TestCalculateTargetVelocityDeceleratesWithLeaderInPath(t *testing.T) {
	ds := NewDataSource()
	ds.SetVehicleDynamics(VehicleDynamics{Frenet: roadmap.FrenetCoordinates{S: 0, D: 6}})
	ds.SetSensorFusion(SensorFusion{Objects: []ObjectFusion{
		NewObjectFusion(1, roadmap.GlobalCoordinates{}, 0, 0, roadmap.FrenetCoordinates{S: 10, D: 6}),
	}})
	vp := NewVelocityPlannerWithSeed(ds, 5, logging.NewLogger("test"))

	vp.CalculateTargetVelocity()
	test.That(t, float64(vp.GetTargetVelocity()), test.ShouldAlmostEqual, 4.9, 1e-9)
}

func TestCalculateTargetVelocityClampsToSpeedLimit(t *testing.T) {
	ds := NewDataSource()
	ds.SetVehicleDynamics(VehicleDynamics{Frenet: roadmap.FrenetCoordinates{S: 0, D: 6}})
	ds.SetSpeedLimit(units.MetersPerSecond(5))
	vp := NewVelocityPlannerWithSeed(ds, 5, logging.NewLogger("test"))

	vp.CalculateTargetVelocity()
	test.That(t, float64(vp.GetTargetVelocity()), test.ShouldAlmostEqual, 5.0, 1e-9)
}

func TestCalculateTargetVelocityNeverNegative(t *testing.T) {
	ds := NewDataSource()
	ds.SetVehicleDynamics(VehicleDynamics{Frenet: roadmap.FrenetCoordinates{S: 0, D: 6}})
	ds.SetSensorFusion(SensorFusion{Objects: []ObjectFusion{
		NewObjectFusion(1, roadmap.GlobalCoordinates{}, 0, 0, roadmap.FrenetCoordinates{S: 10, D: 6}),
	}})
	vp := NewVelocityPlannerWithSeed(ds, 0, logging.NewLogger("test"))

	vp.CalculateTargetVelocity()
	test.That(t, float64(vp.GetTargetVelocity()), test.ShouldAlmostEqual, 0.0, 1e-9)
}
