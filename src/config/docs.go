// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package config loads tls-cert-pinning settings from a JSON or YAML file
// and turns them into the objects the pinning core needs.
//
// Example file (pinning.yaml):
//
//	pin:
//	  alias: pinned.server
//	  minTLSVersion: "1.2"
//	resources:
//	  dir: /etc/pinning
//	  chainBundle: sfbundle.crt
//	http:
//	  timeoutSeconds: 15
//	log:
//	  format: json
//
// Usage:
//
//	cfg, err := config.Load("pinning.yaml")
//	if err != nil {
//		return err
//	}
//	log := cfg.Logger(os.Stderr, nil)
//	reg, err := cfg.Registry(log)
//	if err != nil {
//		return err
//	}
//	client, err := reg.Client(cfg.HTTPConfig(version.Version), false)
package config
