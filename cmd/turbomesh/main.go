// Command turbomesh generates the surface mesh of a bladed flow passage
// from an ini configuration and writes it as binary STL. The velocity field
// comes either from a solver sample file or from the built-in analytic
// free-vortex model.
package main

import (
	"flag"

	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/spatial/r2"
	"gopkg.in/ini.v1"

	"github.com/verticallimit/turbomesh/blade"
	"github.com/verticallimit/turbomesh/camber"
	"github.com/verticallimit/turbomesh/mesh"
	"github.com/verticallimit/turbomesh/vortex"
)

func main() {
	cfgPath := flag.String("config", "turbomesh.ini", "ini configuration file")
	outPath := flag.String("out", "blades.stl", "output STL file")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	file, err := ini.Load(*cfgPath)
	if err != nil {
		log.WithError(err).Fatal("cannot read configuration")
	}

	br := loadRegion(file)
	sampler, err := loadSampler(file)
	if err != nil {
		log.WithError(err).Fatal("cannot build velocity sampler")
	}

	m, err := br.BuildMesh(sampler)
	if err != nil {
		log.WithError(err).Fatal("mesh generation failed")
	}

	if err := mesh.WriteSTLFile(*outPath, m); err != nil {
		log.WithError(err).Fatal("cannot write STL")
	}
	log.WithFields(log.Fields{
		"faces": len(m),
		"file":  *outPath,
	}).Info("STL written")
}

func loadRegion(file *ini.File) *vortex.BladedRegion {
	region := file.Section("region")
	blades := file.Section("blades")

	return &vortex.BladedRegion{
		Region: vortex.Region{
			InletS0: r2.Vec{
				X: region.Key("inlet_r0").MustFloat64(3e-3),
				Y: region.Key("inlet_z0").MustFloat64(7e-3),
			},
			InletS1: r2.Vec{
				X: region.Key("inlet_r1").MustFloat64(7.8e-3),
				Y: region.Key("inlet_z1").MustFloat64(7e-3),
			},
			OutletS0: r2.Vec{
				X: region.Key("outlet_r0").MustFloat64(12.8e-3),
				Y: region.Key("outlet_z0").MustFloat64(0),
			},
			OutletS1: r2.Vec{
				X: region.Key("outlet_r1").MustFloat64(12.8e-3),
				Y: region.Key("outlet_z1").MustFloat64(2e-3),
			},
			InletV: [3]float64{
				region.Key("inlet_vr").MustFloat64(0),
				region.Key("inlet_vth").MustFloat64(0),
				region.Key("inlet_vz").MustFloat64(-39.6),
			},
			OutletV: [3]float64{
				region.Key("outlet_vr").MustFloat64(39.63),
				region.Key("outlet_vth").MustFloat64(-19.15),
				region.Key("outlet_vz").MustFloat64(0),
			},
			PointsM: region.Key("points_m").MustInt(40),
			PointsS: region.Key("points_s").MustInt(20),
		},
		Z:               blades.Key("count").MustInt(7),
		Omega:           blades.Key("omega").MustFloat64(7330),
		Leading:         blade.UniformThickness(blades.Key("thickness_l").MustFloat64(1e-3)),
		Trailing:        blade.UniformThickness(blades.Key("thickness_t").MustFloat64(1e-3)),
		InterbladeFaces: blades.Key("interblade_faces").MustInt(6),
		HubSolid:        blades.Key("hub_solid").MustBool(true),
		ShroudSolid:     blades.Key("shroud_solid").MustBool(false),
	}
}

func loadSampler(file *ini.File) (camber.Sampler, error) {
	flow := file.Section("flow")
	if path := flow.Key("sample_file").String(); path != "" {
		log.WithField("file", path).Info("loading solver velocity samples")
		return camber.LoadRawSamples(path)
	}
	return &camber.FreeVortexSampler{
		VR:    flow.Key("vr").MustFloat64(20),
		VZ:    flow.Key("vz").MustFloat64(-20),
		Gamma: flow.Key("gamma").MustFloat64(5e-4),
	}, nil
}
