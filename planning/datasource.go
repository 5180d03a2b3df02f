package planning

import (
	"sync"

	"go.viam.com/highwayplanner/roadmap"
	"go.viam.com/highwayplanner/units"
)

// defaultSpeedLimit is 48.5 mph expressed in m/s.
var defaultSpeedLimit = units.MPH(48.5).ToMetersPerSecond()

// DataSource is the mutable snapshot of world state the pipeline reads
// from. One DataSource lives for the process lifetime and is
// re-populated once per tick; the single-threaded tick loop guarantees
// setters never interleave with readers, but the RWMutex is kept
// anyway as a cheap defense-in-depth guard.
type DataSource struct {
	mu sync.RWMutex

	vehicleDynamics    VehicleDynamics
	mapCoordinates     *roadmap.Map
	previousPathGlobal []roadmap.GlobalCoordinates
	previousPathEnd    roadmap.FrenetCoordinates
	sensorFusion       SensorFusion
	speedLimit         units.MetersPerSecond
}

// NewDataSource builds an empty DataSource with the default speed limit.
func NewDataSource() *DataSource {
	return &DataSource{speedLimit: defaultSpeedLimit}
}

// SetVehicleDynamics stores the ego vehicle's current state.
func (d *DataSource) SetVehicleDynamics(v VehicleDynamics) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.vehicleDynamics = v
}

// SetMapCoordinates stores the static centerline map.
func (d *DataSource) SetMapCoordinates(m *roadmap.Map) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.mapCoordinates = m
}

// SetPreviousPath stores the unconsumed tail of the last emitted path.
func (d *DataSource) SetPreviousPath(path []roadmap.GlobalCoordinates) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.previousPathGlobal = path
}

// SetPreviousPathEnd stores the previous path tail's terminal Frenet coordinates.
func (d *DataSource) SetPreviousPathEnd(f roadmap.FrenetCoordinates) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.previousPathEnd = f
}

// SetSensorFusion stores the current tick's perceived neighbors.
func (d *DataSource) SetSensorFusion(s SensorFusion) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.sensorFusion = s
}

// SetSpeedLimit stores the current speed limit.
func (d *DataSource) SetSpeedLimit(limit units.MetersPerSecond) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.speedLimit = limit
}

// GetVehicleDynamics returns the current ego vehicle state.
func (d *DataSource) GetVehicleDynamics() VehicleDynamics {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.vehicleDynamics
}

// GetMapCoordinates returns the static centerline map.
func (d *DataSource) GetMapCoordinates() *roadmap.Map {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.mapCoordinates
}

// GetPreviousPathInGlobalCoords returns the unconsumed tail of the last
// emitted path. Absent data yields a zero-length slice, never nil
// panics downstream.
func (d *DataSource) GetPreviousPathInGlobalCoords() []roadmap.GlobalCoordinates {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.previousPathGlobal
}

// GetPreviousPathEnd returns the previous path tail's terminal Frenet coordinates.
func (d *DataSource) GetPreviousPathEnd() roadmap.FrenetCoordinates {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.previousPathEnd
}

// GetSensorFusion returns the current tick's perceived neighbors.
func (d *DataSource) GetSensorFusion() SensorFusion {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.sensorFusion
}

// GetSpeedLimit returns the current speed limit.
func (d *DataSource) GetSpeedLimit() units.MetersPerSecond {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.speedLimit
}

// GetGlobalLaneIdAt classifies an arbitrary Frenet coordinate's lane.
// Lane boundaries are exclusive; values on {0,4,8,12} are Invalid.
func (d *DataSource) GetGlobalLaneIdAt(f roadmap.FrenetCoordinates) roadmap.GlobalLaneId {
	return roadmap.ClassifyLane(f.D)
}

// GetGlobalLaneId classifies the ego vehicle's current lane.
func (d *DataSource) GetGlobalLaneId() roadmap.GlobalLaneId {
	return d.GetGlobalLaneIdAt(d.GetVehicleDynamics().Frenet)
}
